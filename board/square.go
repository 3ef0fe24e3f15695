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

// Package board implements the 8x8 grid representation, per-kind
// pseudo-legal move geometry, attack queries and move application
// (including castling, en passant and promotion). It corresponds to
// components A and B of the system overview.
package board

import "fmt"

// Square is a (row, col) coordinate. Row 0 is the black back rank, row 7
// the white back rank; col 0 is file a, col 7 is file h - the coordinate
// convention §3 and §6 specify.
type Square struct {
	Row, Col int
}

// SquareAt is a small constructor for literal-heavy call sites.
func SquareAt(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Offset returns the square drow/dcol away from s, without bounds
// checking - callers must check OnBoard on the result.
func (s Square) Offset(drow, dcol int) Square {
	return Square{Row: s.Row + drow, Col: s.Col + dcol}
}

// String renders algebraic notation: col -> 'a'+col, row -> '8'-row, the
// conversion §6 specifies for the front end.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.Col), '8'-byte(s.Row))
}

// ParseSquare is the inverse of String: it parses a two-character
// algebraic square ("e4") into a Square, reporting false for anything
// else (wrong length, out-of-range file/rank).
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	col := int(s[0] - 'a')
	row := int('8' - s[1])
	sq := SquareAt(row, col)
	if !sq.OnBoard() {
		return Square{}, false
	}
	return sq, true
}
