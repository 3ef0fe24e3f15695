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
	"github.com/corvidae/chessgo/types"
)

// quiescence extends search beyond the nominal leaf into capture-like
// moves only, to avoid the horizon effect (§4.F). qdepth counts down
// from quiescence_depth and bounds the extension independent of the
// nominal search depth.
func (e *Engine) quiescence(b *board.Board, alpha, beta types.Value, side, rootSide types.Color, qdepth int, st *state) types.Value {
	st.nodes++
	maximizing := side == rootSide
	standPat := evaluator.Evaluate(b, rootSide)

	if maximizing {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if qdepth <= 0 {
		return standPat
	}

	tactical := tacticalMoves(b, side)
	if len(tactical) == 0 {
		return standPat
	}

	ctx := ordering.Context{Board: b, Side: side}
	ordering.Sort(ctx, tactical)

	best := standPat
	for _, m := range tactical {
		victim := b.PieceAt(m.To)
		attacker := b.PieceAt(m.From)
		if victim != nil && !seeWorthSearching(b, m, victim, attacker) {
			continue
		}

		clone := b.Copy()
		clone.MovePiece(m.From, m.To, m.Promotion)
		score := e.quiescence(clone, alpha, beta, side.Opponent(), rootSide, qdepth-1, st)

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
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
				break
			}
		}
	}
	return best
}

// tacticalMoves returns side's legal captures, promotions and checks -
// the only moves quiescence recurses into.
func tacticalMoves(b *board.Board, side types.Color) []board.Move {
	var out []board.Move
	for _, m := range b.LegalMoves(side) {
		if b.PieceAt(m.To) != nil || m.Promotion != types.NoPieceKind || movingGivesCheck(b, m, side) {
			out = append(out, m)
		}
	}
	return out
}

func movingGivesCheck(b *board.Board, m board.Move, side types.Color) bool {
	clone := b.Copy()
	clone.MovePiece(m.From, m.To, m.Promotion)
	return clone.InCheck(side.Opponent())
}

// seeWorthSearching skips captures the SEE heuristic deems unfavorable:
// a losing capture (attacker worth more than victim) is only searched if
// nothing of the defender's color can recapture the destination square.
func seeWorthSearching(b *board.Board, m board.Move, victim, attacker *board.Piece) bool {
	if victim.Kind.MaterialValue() >= attacker.Kind.MaterialValue() {
		return true
	}
	clone := b.Copy()
	clone.MovePiece(m.From, m.To, types.Queen)
	return !clone.IsSquareAttacked(m.To, victim.Color, nil)
}
