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

package ordering

import (
	"testing"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
	"github.com/stretchr/testify/assert"
)

func TestKillers_RecordShiftsPrimaryToSecondary(t *testing.T) {
	k := NewKillers(4)
	first := board.Move{From: board.SquareAt(6, 4), To: board.SquareAt(4, 4)}
	second := board.Move{From: board.SquareAt(6, 3), To: board.SquareAt(4, 3)}

	k.Record(2, first)
	k.Record(2, second)

	assert.True(t, k.isKiller(2, first))
	assert.True(t, k.isKiller(2, second))
	assert.Equal(t, second, k.slots[2][0])
	assert.Equal(t, first, k.slots[2][1])
}

func TestHistory_BumpAccumulatesDepthSquared(t *testing.T) {
	h := NewHistory()
	from, to := board.SquareAt(6, 4), board.SquareAt(4, 4)
	h.Bump(from, to, 3)
	h.Bump(from, to, 2)
	assert.Equal(t, 13, h.get(from, to)) // 3^2 + 2^2
}

func TestScore_CapturePrioritizedOverQuietMove(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(4, 4), types.Rook, types.White)
	b.Place(board.SquareAt(4, 6), types.Pawn, types.Black)

	ctx := Context{Board: b, Side: types.White, Depth: 1, PV: NewPV(), History: NewHistory()}
	capture := board.Move{From: board.SquareAt(4, 4), To: board.SquareAt(4, 6)}
	quiet := board.Move{From: board.SquareAt(4, 4), To: board.SquareAt(4, 5)}

	assert.Greater(t, Score(ctx, capture), Score(ctx, quiet))
}

func TestScore_PVMoveOutranksEverything(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(4, 4), types.Rook, types.White)
	b.Place(board.SquareAt(4, 6), types.Pawn, types.Black)

	pv := NewPV()
	quiet := board.Move{From: board.SquareAt(4, 4), To: board.SquareAt(4, 5)}
	pv.Record(42, 1, quiet)

	ctx := Context{Board: b, Side: types.White, Depth: 1, BoardHash: 42, PV: pv, History: NewHistory()}
	capture := board.Move{From: board.SquareAt(4, 4), To: board.SquareAt(4, 6)}

	assert.Greater(t, Score(ctx, quiet), Score(ctx, capture))
}

func TestSort_OrdersDescending(t *testing.T) {
	b := board.NewEmpty()
	b.Place(board.SquareAt(7, 4), types.King, types.White)
	b.Place(board.SquareAt(0, 4), types.King, types.Black)
	b.Place(board.SquareAt(4, 4), types.Rook, types.White)
	b.Place(board.SquareAt(4, 6), types.Pawn, types.Black)

	ctx := Context{Board: b, Side: types.White, Depth: 1, PV: NewPV(), History: NewHistory()}
	moves := []board.Move{
		{From: board.SquareAt(4, 4), To: board.SquareAt(4, 5)},
		{From: board.SquareAt(4, 4), To: board.SquareAt(4, 6)},
	}
	Sort(ctx, moves)
	assert.Equal(t, board.SquareAt(4, 6), moves[0].To, "the capture should sort first")
}
