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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceKind_MaterialValue(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want int
	}{
		{Pawn, 100},
		{Knight, 320},
		{Bishop, 330},
		{Rook, 500},
		{Queen, 900},
		{King, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.MaterialValue())
		})
	}
}

func TestPromotionKindFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		want   PieceKind
	}{
		{'Q', Queen},
		{'R', Rook},
		{'B', Bishop},
		{'N', Knight},
		{'q', Queen},
		{'X', Queen},
		{0, Queen},
	}
	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			assert.Equal(t, tt.want, PromotionKindFromLetter(tt.letter))
		})
	}
}

func TestValue_IsMateScore(t *testing.T) {
	assert.True(t, ValueMate.IsMateScore())
	assert.True(t, (-ValueMate).IsMateScore())
	assert.False(t, Value(500).IsMateScore())
	assert.Equal(t, "mate 1", (ValueMate - 1).String())
}
