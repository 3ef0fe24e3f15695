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

// PieceKind is a tagged enum for the six chess pieces. Dispatch on kind
// is a plain integer compare rather than virtual method calls, which is
// the point of replacing the base-class/subclass piece model.
type PieceKind int8

const (
	NoPieceKind PieceKind = 0
	Pawn        PieceKind = 1
	Knight      PieceKind = 2
	Bishop      PieceKind = 3
	Rook        PieceKind = 4
	Queen       PieceKind = 5
	King        PieceKind = 6
	NumKinds    PieceKind = 7
)

var kindNames = [NumKinds]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns a lowercase name for the kind.
func (k PieceKind) String() string {
	if k < 0 || k >= NumKinds {
		return "invalid"
	}
	return kindNames[k]
}

var kindLetters = [NumKinds]string{"", "P", "N", "B", "R", "Q", "K"}

// Letter returns the single uppercase algebraic letter for the kind
// ("" for NoPieceKind; pawns have no letter in algebraic notation).
func (k PieceKind) Letter() string {
	return kindLetters[k]
}

// MaterialValue is the fixed material worth in centipawns used by the
// evaluator (§4.D) and by MVV-LVA move ordering (§4.E).
var materialValue = [NumKinds]int{0, 100, 320, 330, 500, 900, 20000}

func (k PieceKind) MaterialValue() int {
	return materialValue[k]
}

// IsSlider reports whether the kind moves along rays (bishop/rook/queen)
// as opposed to a fixed set of offsets.
func (k PieceKind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// IsValid reports whether k is one of the six real piece kinds.
func (k PieceKind) IsValid() bool {
	return k > NoPieceKind && k < NumKinds
}

// PromotionKinds are the four pieces a pawn may promote to, in the order
// the search tries them when expanding a promoting move (§4.C).
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// PromotionKindFromLetter maps a UI-supplied promotion letter to a
// PieceKind. Missing or invalid letters default to Queen, per §4.B step 6
// and §6.
func PromotionKindFromLetter(letter byte) PieceKind {
	switch letter {
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	default:
		return Queen
	}
}
