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

import "github.com/corvidae/chessgo/types"

// IsSquareAttacked reports whether sq is attacked by any piece of
// byColor. ignoreSquare, if non-nil, is treated as empty for the
// purposes of ray-walking sliders: castling legality needs this so a
// slider's ray through the castling king's own start square is not
// blocked by the king that is about to vacate it (§4.A, §4.B).
func (b *Board) IsSquareAttacked(sq Square, byColor types.Color, ignoreSquare *Square) bool {
	return b.attackedByPawn(sq, byColor) ||
		b.attackedByKnight(sq, byColor) ||
		b.attackedBySlider(sq, byColor, diagonalDirs[:], types.Bishop, ignoreSquare) ||
		b.attackedBySlider(sq, byColor, orthoDirs[:], types.Rook, ignoreSquare)
}

func (b *Board) occupant(sq Square, ignoreSquare *Square) *Piece {
	if ignoreSquare != nil && sq == *ignoreSquare {
		return nil
	}
	return b.PieceAt(sq)
}

func (b *Board) attackedByPawn(sq Square, byColor types.Color) bool {
	dir := byColor.PawnDirection()
	for _, dc := range [2]int{-1, 1} {
		from := sq.Offset(-dir, dc)
		if !from.OnBoard() {
			continue
		}
		p := b.PieceAt(from)
		if p != nil && p.Kind == types.Pawn && p.Color == byColor {
			return true
		}
	}
	return false
}

func (b *Board) attackedByKnight(sq Square, byColor types.Color) bool {
	for _, o := range knightOffsets {
		from := sq.Offset(o[0], o[1])
		if !from.OnBoard() {
			continue
		}
		p := b.PieceAt(from)
		if p != nil && p.Kind == types.Knight && p.Color == byColor {
			return true
		}
	}
	return false
}

// attackedBySlider walks dirs away from sq looking for the first
// occupied square in each direction; it's an attacker if that piece is
// byColor and either matches kind exactly or is a queen.
func (b *Board) attackedBySlider(sq Square, byColor types.Color, dirs [][2]int, kind types.PieceKind, ignoreSquare *Square) bool {
	for _, d := range dirs {
		for step := 1; ; step++ {
			cur := sq.Offset(d[0]*step, d[1]*step)
			if !cur.OnBoard() {
				break
			}
			p := b.occupant(cur, ignoreSquare)
			if p == nil {
				continue
			}
			if p.Color == byColor && (p.Kind == kind || p.Kind == types.Queen) {
				return true
			}
			break
		}
	}
	return false
}
