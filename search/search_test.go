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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
)

func TestChooseMove_SingleLegalMoveIsForced(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 0), types.King, types.White)
	b.Place(board.SquareAt(0, 7), types.King, types.Black)
	// The black rook on b8 covers b1 and b2, so a2 is the lone white
	// king's only legal move.
	b.Place(board.SquareAt(0, 1), types.Rook, types.Black)

	legal := b.LegalMoves(types.White)
	assert.Len(t, legal, 1)

	e := NewEngine()
	mv, ok := e.ChooseMove(b, types.White, 2)
	assert.True(t, ok)
	assert.Equal(t, legal[0].From, mv.From)
	assert.Equal(t, legal[0].To, mv.To)
}

func TestChooseMove_NoLegalMovesReturnsFalse(t *testing.T) {
	b := board.NewEmpty()
	// Stalemated black king, no other black piece: no legal moves.
	b.Place(board.SquareAt(0, 0), types.King, types.Black)
	b.Place(board.SquareAt(2, 1), types.King, types.White)
	b.Place(board.SquareAt(1, 2), types.Queen, types.White)

	e := NewEngine()
	_, ok := e.ChooseMove(b, types.Black, 2)
	assert.False(t, ok)
}

func TestChooseMove_TakesFreeQueenOverQuietMove(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(4, 4), types.Rook, types.White)
	b.Place(board.SquareAt(4, 0), types.Queen, types.Black)

	e := NewEngine()
	mv, ok := e.ChooseMove(b, types.White, 3)
	assert.True(t, ok)
	assert.Equal(t, board.SquareAt(4, 4), mv.From)
	assert.Equal(t, board.SquareAt(4, 0), mv.To)
}

// TestMinimax_AgreesWithNaiveMinimax cross-checks the alpha-beta search
// against an unpruned reference over every depth-2 reply from the
// starting position: alpha-beta pruning must never change the value,
// only how many nodes it costs to find it (§8).
func TestMinimax_AgreesWithNaiveMinimax(t *testing.T) {
	b := board.NewBoard()
	e := NewEngine()
	st := newState(8, types.MaxPly, 60000)

	alphaBeta := e.minimax(b.Copy(), 2, -types.ValueInf, types.ValueInf, types.White, types.White, 0, st)
	naive := naiveMinimax(b.Copy(), 2, types.White, types.White)

	assert.Equal(t, naive, alphaBeta)
}

func naiveMinimax(b *board.Board, depth int, side, rootSide types.Color) types.Value {
	if b.InCheckmate(side) {
		if side == rootSide {
			return -types.ValueMate
		}
		return types.ValueMate
	}
	if b.InStalemate(side) {
		return types.ValueDraw
	}
	refSt := newState(8, types.MaxPly, 60000)
	if depth <= 0 {
		return (&Engine{}).quiescence(b, -types.ValueInf, types.ValueInf, side, rootSide, config().QuiescenceDepth, refSt)
	}
	legal := b.LegalMoves(side)
	if len(legal) == 0 {
		return (&Engine{}).quiescence(b, -types.ValueInf, types.ValueInf, side, rootSide, config().QuiescenceDepth, refSt)
	}

	maximizing := side == rootSide
	best := types.Value(-1 << 30)
	if !maximizing {
		best = types.Value(1 << 30)
	}
	for _, m := range legal {
		clone := b.Copy()
		clone.MovePiece(m.From, m.To, m.Promotion)
		score := naiveMinimax(clone, depth-1, side.Opponent(), rootSide)
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}
	return best
}
