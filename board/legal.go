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

// LegalMoves filters PseudoLegalMoves by the one rule pure geometry
// can't express: a move is legal only if, played on a clone, it does not
// leave color's own king attacked (§4.C). Pawn promotions are expanded
// into one Move per promotion choice here, since only this layer knows
// a pseudo-legal pawn push reaches the far rank.
//
// This lives on Board rather than a turn-and-history-aware Game type
// because every caller that needs it - the evaluator's mobility term,
// move ordering's check-giving bonus, the search core, and Game itself -
// only ever needs board state and a color, never move history. Keeping
// it here avoids those lower layers importing the higher-level Game
// package at all.
func (b *Board) LegalMoves(color types.Color) []Move {
	var legal []Move
	for _, p := range b.Pieces(color) {
		for _, m := range b.PseudoLegalMoves(p) {
			legal = append(legal, expandPromotion(p, m)...)
		}
	}

	out := legal[:0]
	for _, m := range legal {
		if b.moveKeepsKingSafe(m, color) {
			out = append(out, m)
		}
	}
	return out
}

func expandPromotion(p *Piece, m Move) []Move {
	if p.Kind != types.Pawn {
		return []Move{m}
	}
	farRank := 0
	if p.Color == types.Black {
		farRank = 7
	}
	if m.To.Row != farRank {
		return []Move{m}
	}
	out := make([]Move, 0, len(types.PromotionKinds))
	for _, pk := range types.PromotionKinds {
		out = append(out, Move{From: m.From, To: m.To, Promotion: pk})
	}
	return out
}

func (b *Board) moveKeepsKingSafe(m Move, color types.Color) bool {
	clone := b.Copy()
	clone.MovePiece(m.From, m.To, m.Promotion)
	kingSq, found := clone.FindKing(color)
	if !found {
		return false
	}
	return !clone.IsSquareAttacked(kingSq, color.Opponent(), nil)
}

// InCheck reports whether color's king is currently attacked.
func (b *Board) InCheck(color types.Color) bool {
	kingSq, found := b.FindKing(color)
	if !found {
		return false
	}
	return b.IsSquareAttacked(kingSq, color.Opponent(), nil)
}

// InCheckmate reports check with no legal reply.
func (b *Board) InCheckmate(color types.Color) bool {
	return b.InCheck(color) && len(b.LegalMoves(color)) == 0
}

// InStalemate reports no legal move while not in check.
func (b *Board) InStalemate(color types.Color) bool {
	return !b.InCheck(color) && len(b.LegalMoves(color)) == 0
}
