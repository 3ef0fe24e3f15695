/*
 * MIT License
 *
 * Copyright (c) 2024 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/evaluator"
	"github.com/corvidae/chessgo/ordering"
	"github.com/corvidae/chessgo/transpositiontable"
	"github.com/corvidae/chessgo/types"
)

// minimax is the alpha-beta core of §4.F. side is the side to move at
// this node; rootSide is the side the top-level ChooseMove is searching
// for, used to orient terminal and leaf scores to "the engine's
// perspective" the evaluator and mate scores are defined in.
func (e *Engine) minimax(b *board.Board, depth int, alpha, beta types.Value, side, rootSide types.Color, ply int, st *state) types.Value {
	st.nodes++
	maximizing := side == rootSide

	if b.InCheckmate(side) {
		if maximizing {
			return -types.ValueMate
		}
		return types.ValueMate
	}
	if b.InStalemate(side) {
		return types.ValueDraw
	}

	key := transpositiontable.Key(b)
	if entry, ok := st.tt.Probe(key); ok && entry.Depth >= depth {
		switch entry.Bound {
		case transpositiontable.Exact:
			return types.Value(entry.Score)
		case transpositiontable.Upper:
			if types.Value(entry.Score) < beta {
				beta = types.Value(entry.Score)
			}
		case transpositiontable.Lower:
			if types.Value(entry.Score) > alpha {
				alpha = types.Value(entry.Score)
			}
		}
		if alpha >= beta {
			return types.Value(entry.Score)
		}
	}

	if depth <= 0 {
		return e.quiescence(b, alpha, beta, side, rootSide, config().QuiescenceDepth, st)
	}

	legal := b.LegalMoves(side)
	if len(legal) == 0 {
		return evaluator.Evaluate(b, rootSide)
	}

	ctx := ordering.Context{
		Board: b, Side: side, Ply: ply, Depth: depth,
		BoardHash: key, Killers: st.killers, History: st.history, PV: st.pv,
	}
	ordering.Sort(ctx, legal)

	best := -types.ValueInf
	if !maximizing {
		best = types.ValueInf
	}
	bound := transpositiontable.Exact

	for _, m := range legal {
		clone := b.Copy()
		clone.MovePiece(m.From, m.To, m.Promotion)
		score := e.minimax(clone, depth-1, alpha, beta, side.Opponent(), rootSide, ply+1, st)

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				recordCutoff(b, st, m, depth, ply)
				bound = transpositiontable.Lower
				break
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if alpha >= beta {
				recordCutoff(b, st, m, depth, ply)
				bound = transpositiontable.Upper
				break
			}
		}
	}

	st.tt.Store(key, transpositiontable.Entry{Depth: depth, Score: int(best), Bound: bound})
	return best
}

func recordCutoff(b *board.Board, st *state, m board.Move, depth, ply int) {
	if b.PieceAt(m.To) != nil {
		return // captures are never recorded as killers (§4.F)
	}
	st.killers.Record(ply, m)
	st.history.Bump(m.From, m.To, depth)
}
