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

package game

import (
	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
)

// MoveRecord is the undo-log entry appended by PlayMove (§3). The
// previous en-passant target doesn't need to be carried here: it
// already lives on the embedded result's PreviousEnPassant field, which
// UndoMove writes straight back to the board.
type MoveRecord struct {
	From, To        board.Square
	CapturedPiece   *board.Piece
	SpecialMove     board.SpecialMove
	PromotionChoice types.PieceKind
	result          board.MoveResult
}

// Move is the (from, to, promotion?) triple the external API speaks in
// (§6). Promotion is types.NoPieceKind when the move isn't a promotion.
type Move struct {
	From, To  board.Square
	Promotion types.PieceKind
}
