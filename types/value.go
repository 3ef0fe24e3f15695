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
	"strconv"
	"strings"
)

// Value is a signed evaluation score in centipawns, from the engine's
// perspective (§4.D): positive favors the side that called the search.
type Value int32

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	// ValueMate is returned when the engine delivers checkmate; -ValueMate
	// when the engine is mated, 0 on stalemate. See §4.D and §4.F.
	ValueMate Value = 100000

	// ValueInf is a window bound wider than any reachable evaluation,
	// used to seed alpha/beta at the root.
	ValueInf Value = ValueMate + 1

	// MateThreshold: scores beyond this magnitude are forced-mate scores;
	// iterative deepening stops early once the root score crosses it
	// (§4.F step 3).
	MateThreshold Value = 90000
)

func abs(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// IsMateScore reports whether v represents a forced mate either way.
func (v Value) IsMateScore() bool {
	return abs(v) > MateThreshold && abs(v) <= ValueMate
}

// String renders a mate distance ("mate 3" / "mate -2") for mate scores
// and a plain centipawn value ("cp 35") otherwise.
func (v Value) String() string {
	var b strings.Builder
	if v.IsMateScore() {
		b.WriteString("mate ")
		pliesToMate := ValueMate - abs(v)
		movesToMate := (pliesToMate + 1) / 2
		if v < ValueZero {
			b.WriteString("-")
		}
		b.WriteString(strconv.Itoa(int(movesToMate)))
	} else {
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
