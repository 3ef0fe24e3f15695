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

package board

import (
	"github.com/corvidae/chessgo/assert"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/types"
)

var log = logging.GetLog()

// Board is an 8x8 grid of optional pieces plus the single extra bit of
// state castling/en passant need: the square a pawn could be captured on
// by en passant next ply (§3). A flat array would be marginally more
// cache-friendly; the grid is kept as [8][8] because (row, col)
// addressing is the API every other package uses and Go doesn't need
// the extra indirection a flat index buys in a systems language.
type Board struct {
	squares       [8][8]*Piece
	EnPassant     *Square
}

// NewBoard returns the standard chess starting position.
func NewBoard() *Board {
	b := &Board{}
	backRank := [8]types.PieceKind{
		types.Rook, types.Knight, types.Bishop, types.Queen,
		types.King, types.Bishop, types.Knight, types.Rook,
	}
	for col := 0; col < 8; col++ {
		b.squares[0][col] = newPiece(backRank[col], types.Black, SquareAt(0, col))
		b.squares[1][col] = newPiece(types.Pawn, types.Black, SquareAt(1, col))
		b.squares[6][col] = newPiece(types.Pawn, types.White, SquareAt(6, col))
		b.squares[7][col] = newPiece(backRank[col], types.White, SquareAt(7, col))
	}
	return b
}

// PieceAt returns the piece at sq, or nil if sq is empty. sq must be
// OnBoard; callers at system boundaries (e.g. a UI coordinate) must
// check that themselves.
func (b *Board) PieceAt(sq Square) *Piece {
	if assert.DEBUG {
		assert.Assert(sq.OnBoard(), "PieceAt called with off-board square %v", sq)
	}
	if !sq.OnBoard() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

func (b *Board) setPieceAt(sq Square, p *Piece) {
	b.squares[sq.Row][sq.Col] = p
}

// NewEmpty returns a board with no pieces and no en-passant target, for
// constructing test positions or endgame scenarios piece by piece.
func NewEmpty() *Board {
	return &Board{}
}

// Place sets sq to a fresh piece of kind/color with has_moved = false.
// Used by test setup and by anything building a position from scratch
// rather than from the standard starting array.
func (b *Board) Place(sq Square, kind types.PieceKind, color types.Color) {
	b.setPieceAt(sq, newPiece(kind, color, sq))
}

// Copy produces a fresh Board with cloned pieces (HasMoved preserved)
// and an identical EnPassant target. No mutable state is shared with
// the original, which is what makes copy-make search safe (§4.B, §9).
func (b *Board) Copy() *Board {
	cp := &Board{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			cp.squares[r][c] = b.squares[r][c].Clone()
		}
	}
	if b.EnPassant != nil {
		ep := *b.EnPassant
		cp.EnPassant = &ep
	}
	return cp
}

// FindKing returns the square of color's king. Per §3 invariant 2 there
// is always exactly one; a false second result during a legal game is a
// programmer error (§7).
func (b *Board) FindKing(color types.Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p != nil && p.Kind == types.King && p.Color == color {
				return SquareAt(r, c), true
			}
		}
	}
	return Square{}, false
}

// Pieces returns every piece currently belonging to color, in board
// scan order. Used by legal-move enumeration and the evaluator.
func (b *Board) Pieces(color types.Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p != nil && p.Color == color {
				out = append(out, p)
			}
		}
	}
	return out
}
