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

package evaluator

import (
	"testing"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_StartingPositionIsSymmetric(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, Evaluate(b, types.White), Evaluate(b, types.Black))
}

func TestEvaluate_MaterialAdvantageFavorsTheSideWithMorePieces(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(4, 4), types.Queen, types.White)

	assert.Greater(t, int(Evaluate(b, types.White)), 0)
	assert.Less(t, int(Evaluate(b, types.Black)), 0)
}

func TestEvaluate_CheckPenalizesTheCheckedSide(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(7, 0), types.Rook, types.Black)

	assert.True(t, b.InCheck(types.White))
	assert.Less(t, int(Evaluate(b, types.White)), int(Evaluate(b, types.Black)))
}
