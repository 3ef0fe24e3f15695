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

// Piece is owned by the square it occupies; Pos always equals the grid
// cell that holds it (§3 invariant 1). HasMoved is relied on by castling
// (§4.A): it starts false and MovePiece sets it true on the piece's
// first move, so an unmoved piece still stands on its starting square.
type Piece struct {
	Kind     types.PieceKind
	Color    types.Color
	Pos      Square
	HasMoved bool
}

func newPiece(kind types.PieceKind, color types.Color, pos Square) *Piece {
	return &Piece{Kind: kind, Color: color, Pos: pos}
}

// Clone returns an independent copy, used by Board.Copy so speculative
// search clones never share mutable piece state with the original.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (p *Piece) String() string {
	letter := p.Kind.Letter()
	if p.Kind == types.Pawn {
		letter = "P"
	}
	if p.Color == types.Black {
		return string(letter[0] + 32) // lowercase
	}
	return letter
}
