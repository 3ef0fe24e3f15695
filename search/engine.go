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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/game"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/ordering"
	"github.com/corvidae/chessgo/transpositiontable"
	"github.com/corvidae/chessgo/types"
	"github.com/corvidae/chessgo/util"
)

var log = logging.GetSearchLog()
var statsPrinter = message.NewPrinter(language.English)

const maxPly = types.MaxPly

// Engine is the game.Searcher the game package drives: a
// stateless value whose methods rebuild and discard all search state on
// every call, per §5.
type Engine struct{}

// NewEngine returns a ready-to-use search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ChooseMove is the top-level choose_move entry point of §4.F. depth is
// the configured search depth; callers pass game.AIDepth, or 0 to fall
// back to config.Settings.Search.Depth.
func (e *Engine) ChooseMove(b *board.Board, turn types.Color, depth int) (game.Move, bool) {
	legal := b.LegalMoves(turn)
	if len(legal) == 0 {
		return game.Move{}, false
	}
	if len(legal) == 1 {
		return toGameMove(legal[0]), true
	}

	tun := config()
	cfgDepth := depth
	if cfgDepth <= 0 {
		cfgDepth = tun.Depth
	}

	st := newState(tun.TTSizeMB, maxPly, tun.MoveTimeMS)

	var best board.Move
	var bestScore types.Value

	for iteration := 1; iteration <= cfgDepth; iteration++ {
		effDepth := adaptiveDepth(b, turn, iteration, cfgDepth, legal, st.prevRootScore)
		boardHash := transpositiontable.Key(b)

		ctx := ordering.Context{
			Board: b, Side: turn, Ply: 0, Depth: effDepth,
			BoardHash: boardHash, Killers: st.killers, History: st.history, PV: st.pv,
		}
		ordering.Sort(ctx, legal)

		iterBest, iterScore, completed := e.searchRoot(b, turn, effDepth, legal, st)
		if !completed {
			break
		}
		best, bestScore = iterBest, iterScore
		st.pv.Record(boardHash, effDepth, best)
		st.prevRootScore = bestScore

		log.Debugf("depth=%d nodes=%s score=%s best=%s", effDepth, formatNodeCount(st.nodes), bestScore, best)

		if st.timeUp() || bestScore.IsMateScore() {
			break
		}
	}

	return toGameMove(best), true
}

// searchRoot runs one iteration's alpha-beta pass over the (already
// ordered) root moves, returning the best move and score found, and
// whether the iteration ran to completion (false if the wall-clock
// deadline was hit mid-iteration, in which case its result is discarded
// and the caller keeps the previous iteration's best move).
func (e *Engine) searchRoot(b *board.Board, turn types.Color, depth int, moves []board.Move, st *state) (board.Move, types.Value, bool) {
	alpha := -types.ValueInf
	const beta = types.ValueInf
	var best board.Move
	bestScore := -types.ValueInf

	for i, m := range moves {
		if st.timeUp() && i > 0 {
			return best, bestScore, false
		}
		clone := b.Copy()
		clone.MovePiece(m.From, m.To, m.Promotion)
		score := e.minimax(clone, depth-1, alpha, beta, turn.Opponent(), turn, 1, st)

		if score > bestScore || i == 0 {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore, true
}

func toGameMove(m board.Move) game.Move {
	return game.Move{From: m.From, To: m.To, Promotion: m.Promotion}
}

func formatNodeCount(n int) string {
	return statsPrinter.Sprintf("%d", n)
}

func clampDepth(d, lo, hi int) int {
	return util.Clamp(d, lo, hi)
}
