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

// Package game holds turn state, move history and the undo log on top of
// a board.Board, and the single public decision entry point the front
// end drives: PlayMove / UndoMove / ChooseAIMove. It corresponds to
// component C of the system overview; the pure legality filtering it
// calls into lives in board.Board.LegalMoves (see that file's doc
// comment for why).
package game

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/tactics"
	"github.com/corvidae/chessgo/types"
)

var log = logging.GetLog()

// Searcher is the strategy Game.ChooseAIMove delegates to. It is
// satisfied by search.Engine; Game depends only on this interface so
// game never has to import the search package (which itself imports
// game for Move), avoiding an import cycle.
type Searcher interface {
	ChooseMove(b *board.Board, turn types.Color, depth int) (Move, bool)
}

// Game is one in-progress chess game: a board plus the session state a
// pure Board has no business knowing about (whose turn it is, how many
// full moves have elapsed, the undo history, and the optional AI
// opponent).
type Game struct {
	Board     *board.Board
	Turn      types.Color
	MoveCount int

	AIOpponent bool
	AIColor    types.Color
	AIDepth    int

	history []MoveRecord
	search  Searcher
	sem     *semaphore.Weighted
}

// NewGame returns a fresh game at the standard starting position.
// aiDepth configures the strategy attached later via SetSearcher; it is
// stored on Game because it is part of session configuration, not of
// any one search call's state (§3).
func NewGame(aiOpponent bool, aiColor types.Color, aiDepth int) *Game {
	return &Game{
		Board:      board.NewBoard(),
		Turn:       types.White,
		MoveCount:  1,
		AIOpponent: aiOpponent,
		AIColor:    aiColor,
		AIDepth:    aiDepth,
		sem:        semaphore.NewWeighted(1),
	}
}

// SetSearcher wires the search strategy ChooseAIMove delegates to. Game
// is usable without one (PlayMove/UndoMove/legality all work); only
// ChooseAIMove requires it.
func (g *Game) SetSearcher(s Searcher) {
	g.search = s
}

// LegalMoves returns every legal (from, to, promotion?) triple for color
// in the current position.
func (g *Game) LegalMoves(color types.Color) []Move {
	bm := g.Board.LegalMoves(color)
	out := make([]Move, len(bm))
	for i, m := range bm {
		out[i] = Move{From: m.From, To: m.To, Promotion: m.Promotion}
	}
	return out
}

func (g *Game) InCheck(color types.Color) bool     { return g.Board.InCheck(color) }
func (g *Game) InCheckmate(color types.Color) bool { return g.Board.InCheckmate(color) }
func (g *Game) InStalemate(color types.Color) bool { return g.Board.InStalemate(color) }

// PlayMove rejects if there is no piece at from, it isn't that color's
// turn, to is not among that piece's pseudo-legal targets, or the
// resulting position leaves the mover's own king attacked. Otherwise it
// applies the move, appends a MoveRecord, switches turn, and - if the AI
// now owns the side to move - triggers ChooseAIMove (§4.C).
func (g *Game) PlayMove(from, to board.Square, promotion types.PieceKind) bool {
	piece := g.Board.PieceAt(from)
	if piece == nil || piece.Color != g.Turn {
		return false
	}
	if !pseudoLegalContains(g.Board.PseudoLegalMoves(piece), to) {
		return false
	}

	legal := g.Board.LegalMoves(g.Turn)
	matched := false
	for _, m := range legal {
		if m.From != from || m.To != to {
			continue
		}
		if m.Promotion == types.NoPieceKind {
			matched = true
			break
		}
		// A promoting move: the caller's choice must name one of the
		// expanded variants exactly. A missing or invalid choice falls
		// back to Queen (§6, §8), but a valid R/B/N choice must never
		// be silently overridden.
		want := promotion
		if !isPromotionChoice(want) {
			want = types.Queen
		}
		if m.Promotion == want {
			matched = true
			promotion = want
			break
		}
	}
	if !matched {
		return false
	}

	mover := g.Turn
	result := g.Board.MovePiece(from, to, promotion)
	g.history = append(g.history, MoveRecord{
		From:            from,
		To:              to,
		CapturedPiece:   result.Captured,
		SpecialMove:     result.Special,
		PromotionChoice: promotion,
		result:          result,
	})

	g.Turn = g.Turn.Opponent()
	if g.Turn == types.White {
		g.MoveCount++
	}
	log.Debugf("%s played %s%s", mover, from, to)

	if g.AIOpponent && g.Turn == g.AIColor && g.search != nil {
		if mv, ok := g.ChooseAIMove(); ok {
			g.PlayMove(mv.From, mv.To, mv.Promotion)
		}
	}
	return true
}

func pseudoLegalContains(moves []board.Move, to board.Square) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}

// isPromotionChoice reports whether k is one of the four pieces a pawn
// may promote to; anything else (including NoPieceKind) is not a valid
// caller choice and must fall back to Queen rather than match by accident.
func isPromotionChoice(k types.PieceKind) bool {
	for _, p := range types.PromotionKinds {
		if k == p {
			return true
		}
	}
	return false
}

// UndoMove pops the last MoveRecord and reverses it on the board,
// restores turn and move_count, and returns false if there is no history
// to undo.
func (g *Game) UndoMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.Board.Undo(last.result)
	g.Turn = g.Turn.Opponent()
	if g.Turn == types.Black {
		g.MoveCount--
	}
	return true
}

// ChooseAIMove runs the configured Searcher over the current position.
// The call is atomic from the caller's view: a size-1 semaphore ensures
// two concurrent callers (e.g. a front end double-invoking on the UI
// thread and a scheduled retry) can't overlap search state (§5).
func (g *Game) ChooseAIMove() (Move, bool) {
	if g.search == nil {
		return Move{}, false
	}
	if err := g.sem.Acquire(context.Background(), 1); err != nil {
		return Move{}, false
	}
	defer g.sem.Release(1)

	return g.search.ChooseMove(g.Board, g.Turn, g.AIDepth)
}

// DetectTactics computes pins/forks/skewers for the side to move, for UI
// hints only; it is never invoked by search (§4.G).
func (g *Game) DetectTactics() tactics.Report {
	return tactics.Detect(g.Board, g.Turn)
}
