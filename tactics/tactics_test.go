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

package tactics

import (
	"testing"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
	"github.com/stretchr/testify/assert"
)

func newEmptyBoard() *board.Board {
	return board.NewEmpty()
}

func TestDetectPins(t *testing.T) {
	b := newEmptyBoard()
	setPiece(b, 7, 4, types.King, types.White)
	// A knight, unlike a rook, can never stay on the pin line - every one
	// of its moves exposes the king, matching the detector's literal
	// "every pseudo-legal move exposes the king" definition.
	setPiece(b, 6, 4, types.Knight, types.White)
	setPiece(b, 0, 4, types.Rook, types.Black)
	setPiece(b, 0, 0, types.King, types.Black)

	report := Detect(b, types.White)
	found := false
	for _, p := range report.Pins {
		if p.Square == board.SquareAt(6, 4) {
			found = true
		}
	}
	assert.True(t, found, "the knight on the e-file between the kings is pinned")
}

func TestDetectForks(t *testing.T) {
	b := newEmptyBoard()
	setPiece(b, 7, 4, types.King, types.White)
	setPiece(b, 0, 0, types.King, types.Black)
	setPiece(b, 4, 2, types.Knight, types.Black)
	setPiece(b, 2, 1, types.Rook, types.White)
	setPiece(b, 2, 3, types.Queen, types.White)

	report := Detect(b, types.White)
	assert.NotEmpty(t, report.Forks)
	assert.Equal(t, board.SquareAt(4, 2), report.Forks[0].Square)
	assert.Len(t, report.Forks[0].Targets, 2)
}

func TestDetectSkewers(t *testing.T) {
	b := newEmptyBoard()
	setPiece(b, 7, 4, types.King, types.White)
	setPiece(b, 3, 3, types.King, types.Black)
	setPiece(b, 0, 0, types.Rook, types.Black)
	setPiece(b, 0, 2, types.Queen, types.White)
	setPiece(b, 0, 5, types.Rook, types.White)

	report := Detect(b, types.White)
	assert.NotEmpty(t, report.Skewers)
	assert.Equal(t, board.SquareAt(0, 2), report.Skewers[0].Front)
	assert.Equal(t, board.SquareAt(0, 5), report.Skewers[0].Back)
}

func setPiece(b *board.Board, row, col int, kind types.PieceKind, color types.Color) {
	b.Place(board.SquareAt(row, col), kind, color)
}
