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

// SpecialMove tags the bookkeeping a move triggers beyond "piece lands on
// To", per the seven-step application order in §4.B.
type SpecialMove uint8

const (
	NoSpecial SpecialMove = iota
	CastleKingside
	CastleQueenside
	EnPassantCapture
	DoublePawnPush
	Promotion
)

// Move is From->To plus a promotion choice. Promotion is filled in by
// Board.LegalMoves when it expands a pawn move onto the far rank;
// PseudoLegalMoves only proposes raw geometric targets. Special is not
// set by either generator: MovePiece works out the special-move
// bookkeeping from the board itself and reports it in MoveResult.Special.
type Move struct {
	From, To  Square
	Promotion types.PieceKind
	Special   SpecialMove
}

func (m Move) String() string {
	if m.Promotion != types.NoPieceKind {
		return m.From.String() + m.To.String() + m.Promotion.Letter()
	}
	return m.From.String() + m.To.String()
}
