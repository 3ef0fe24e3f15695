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

// MoveResult is everything MovePiece learned while applying a move -
// enough for undo to reverse it exactly, and enough for the game layer
// to classify the special move for a MoveRecord.
type MoveResult struct {
	From, To           Square
	OriginalPiece      *Piece
	Captured           *Piece
	CapturedAt         Square
	Promoted           *Piece
	Special            SpecialMove
	RookFrom, RookTo   Square
	PreviousEnPassant  *Square
}

// MovePiece applies a move assumed to be pseudo-legal, following the
// seven-step order of §4.B: snapshot capture + en-passant state, resolve
// en-passant capture, set a fresh en-passant target on a double push,
// relocate the castling rook, move the piece itself, then resolve
// promotion. The log entry previous_en_passant is reported from the
// snapshot taken in step 1, mirroring the order the source reads it in -
// see the open question on en-passant-target timing.
func (b *Board) MovePiece(from, to Square, promotionChoice types.PieceKind) MoveResult {
	moving := b.PieceAt(from)

	// Step 1: snapshot capture + current EP target, then clear it.
	var prevEP *Square
	if b.EnPassant != nil {
		ep := *b.EnPassant
		prevEP = &ep
	}
	captured := b.PieceAt(to)
	capturedAt := to
	b.EnPassant = nil

	special := NoSpecial

	// Step 2: en-passant capture.
	if moving.Kind == types.Pawn && captured == nil && prevEP != nil && to == *prevEP {
		victimSq := SquareAt(from.Row, to.Col)
		captured = b.PieceAt(victimSq)
		capturedAt = victimSq
		b.setPieceAt(victimSq, nil)
		special = EnPassantCapture
	}

	// Step 3: new EP target on a double pawn push.
	if moving.Kind == types.Pawn {
		if from.Row-to.Row == 2 || to.Row-from.Row == 2 {
			mid := SquareAt((from.Row+to.Row)/2, from.Col)
			b.EnPassant = &mid
			special = DoublePawnPush
		}
	}

	// Step 4: castling rook relocation.
	var rookFrom, rookTo Square
	if moving.Kind == types.King && (from.Col-to.Col == 2 || to.Col-from.Col == 2) {
		rank := from.Row
		if to.Col > from.Col {
			special = CastleKingside
			rookFrom = SquareAt(rank, 7)
			rookTo = SquareAt(rank, 5)
		} else {
			special = CastleQueenside
			rookFrom = SquareAt(rank, 0)
			rookTo = SquareAt(rank, 3)
		}
		rook := b.PieceAt(rookFrom)
		b.setPieceAt(rookFrom, nil)
		rook.Pos = rookTo
		rook.HasMoved = true
		b.setPieceAt(rookTo, rook)
	}

	// Step 5: move the piece itself.
	b.setPieceAt(from, nil)
	moving.Pos = to
	moving.HasMoved = true
	b.setPieceAt(to, moving)

	// Step 6: promotion.
	var promoted *Piece
	farRank := 0
	if moving.Color == types.Black {
		farRank = 7
	}
	if moving.Kind == types.Pawn && to.Row == farRank {
		kind := promotionChoice
		if !validPromotionKind(kind) {
			kind = types.Queen
		}
		promoted = newPiece(kind, moving.Color, to)
		promoted.HasMoved = true
		b.setPieceAt(to, promoted)
		special = Promotion
	}

	return MoveResult{
		From:              from,
		To:                to,
		OriginalPiece:     moving,
		Captured:          captured,
		CapturedAt:        capturedAt,
		Promoted:          promoted,
		Special:           special,
		RookFrom:          rookFrom,
		RookTo:            rookTo,
		PreviousEnPassant: prevEP,
	}
}

func validPromotionKind(k types.PieceKind) bool {
	for _, pk := range types.PromotionKinds {
		if pk == k {
			return true
		}
	}
	return false
}

// Undo reverses a MoveResult in place: restores the original piece at
// From, restores any captured piece at its capture square (which, for en
// passant, differs from To), and restores a relocated castling rook.
// has_moved is reset to false for castling and promotion undo only,
// matching the source's asymmetric restoration (§4.C, §9).
func (b *Board) Undo(r MoveResult) {
	b.EnPassant = r.PreviousEnPassant

	b.setPieceAt(r.To, nil)
	if r.Captured != nil {
		b.setPieceAt(r.CapturedAt, r.Captured)
	}

	restored := r.OriginalPiece
	restored.Pos = r.From
	if r.Special == CastleKingside || r.Special == CastleQueenside || r.Special == Promotion {
		restored.HasMoved = false
	}
	b.setPieceAt(r.From, restored)

	if r.Special == CastleKingside || r.Special == CastleQueenside {
		rook := b.PieceAt(r.RookTo)
		b.setPieceAt(r.RookTo, nil)
		rook.Pos = r.RookFrom
		rook.HasMoved = false
		b.setPieceAt(r.RookFrom, rook)
	}
}
