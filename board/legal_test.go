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
	"testing"

	"github.com/corvidae/chessgo/types"
	"github.com/stretchr/testify/assert"
)

func TestFoolsMate(t *testing.T) {
	b := NewBoard()
	b.MovePiece(SquareAt(6, 5), SquareAt(5, 5), types.NoPieceKind) // f2-f3
	b.MovePiece(SquareAt(1, 4), SquareAt(3, 4), types.NoPieceKind) // e7-e5
	b.MovePiece(SquareAt(6, 6), SquareAt(4, 6), types.NoPieceKind) // g2-g4
	b.MovePiece(SquareAt(0, 3), SquareAt(4, 7), types.NoPieceKind) // Qd8-h4

	assert.True(t, b.InCheckmate(types.White))
}

func TestScholarsMate(t *testing.T) {
	b := NewBoard()
	b.MovePiece(SquareAt(6, 4), SquareAt(4, 4), types.NoPieceKind)
	b.MovePiece(SquareAt(1, 4), SquareAt(3, 4), types.NoPieceKind)
	b.MovePiece(SquareAt(7, 5), SquareAt(4, 2), types.NoPieceKind)
	b.MovePiece(SquareAt(0, 1), SquareAt(2, 2), types.NoPieceKind)
	b.MovePiece(SquareAt(7, 3), SquareAt(3, 7), types.NoPieceKind)
	b.MovePiece(SquareAt(0, 6), SquareAt(2, 5), types.NoPieceKind)
	b.MovePiece(SquareAt(3, 7), SquareAt(1, 5), types.NoPieceKind)

	assert.True(t, b.InCheckmate(types.Black))
}

func TestStalemate(t *testing.T) {
	b := &Board{}
	b.setPieceAt(SquareAt(0, 0), newPiece(types.King, types.White, SquareAt(0, 0)))
	b.setPieceAt(SquareAt(2, 1), newPiece(types.Queen, types.Black, SquareAt(2, 1)))
	b.setPieceAt(SquareAt(2, 2), newPiece(types.King, types.Black, SquareAt(2, 2)))

	assert.Empty(t, b.LegalMoves(types.White))
	assert.False(t, b.InCheck(types.White))
	assert.True(t, b.InStalemate(types.White))
}

func TestLegalMoves_ExcludesMovesThatExposeOwnKing(t *testing.T) {
	b := &Board{}
	// White king e1, white rook e2 pinned by black rook e8.
	b.setPieceAt(SquareAt(7, 4), newPiece(types.King, types.White, SquareAt(7, 4)))
	b.setPieceAt(SquareAt(6, 4), newPiece(types.Rook, types.White, SquareAt(6, 4)))
	b.setPieceAt(SquareAt(0, 4), newPiece(types.Rook, types.Black, SquareAt(0, 4)))
	b.setPieceAt(SquareAt(0, 0), newPiece(types.King, types.Black, SquareAt(0, 0)))

	moves := b.LegalMoves(types.White)
	for _, m := range moves {
		if m.From == SquareAt(6, 4) {
			assert.Equal(t, 4, m.To.Col, "the pinned rook may only move along the e-file")
		}
	}
}

func TestLegalMoves_ExpandsPromotionChoices(t *testing.T) {
	b := &Board{}
	b.setPieceAt(SquareAt(7, 4), newPiece(types.King, types.White, SquareAt(7, 4)))
	b.setPieceAt(SquareAt(0, 7), newPiece(types.King, types.Black, SquareAt(0, 7)))
	b.setPieceAt(SquareAt(1, 0), newPiece(types.Pawn, types.White, SquareAt(1, 0)))

	moves := b.LegalMoves(types.White)
	count := 0
	kinds := map[types.PieceKind]bool{}
	for _, m := range moves {
		if m.From == SquareAt(1, 0) && m.To == SquareAt(0, 0) {
			count++
			kinds[m.Promotion] = true
		}
	}
	assert.Equal(t, 4, count, "a pawn one step from the far rank should offer all four promotion choices")
	for _, pk := range types.PromotionKinds {
		assert.True(t, kinds[pk], "missing promotion choice %v", pk)
	}
}
