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

package transpositiontable

import (
	"testing"

	"github.com/corvidae/chessgo/board"
	"github.com/stretchr/testify/assert"
)

func TestKey_SamePositionSameKey(t *testing.T) {
	b1 := board.NewBoard()
	b2 := board.NewBoard()
	assert.Equal(t, Key(b1), Key(b2))
}

func TestKey_DifferentPositionDifferentKey(t *testing.T) {
	b1 := board.NewBoard()
	b2 := board.NewBoard()
	b2.MovePiece(board.SquareAt(6, 4), board.SquareAt(4, 4), 0)
	assert.NotEqual(t, Key(b1), Key(b2))
}

func TestKey_IgnoresSideToMove(t *testing.T) {
	// Two distinct boards with identical placement must collide, per the
	// preserved source behavior (§9 open question 4): the key has no
	// side-to-move component by construction, so this is really just
	// documenting that Key depends only on placement + EP target.
	b1 := board.NewBoard()
	b2 := b1.Copy()
	assert.Equal(t, Key(b1), Key(b2))
}

func TestTable_StoreAndProbe(t *testing.T) {
	tbl := New(1)
	key := Key(board.NewBoard())
	_, ok := tbl.Probe(key)
	assert.False(t, ok)

	tbl.Store(key, Entry{Depth: 4, Score: 35, Bound: Exact})
	e, ok := tbl.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, Exact, e.Bound)
}
