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

// Direction offsets, row delta then col delta.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthoDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = append(append([][2]int{}, diagonalDirs[:]...), orthoDirs[:]...)

	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}

	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

func dirsFor(kind types.PieceKind) [][2]int {
	switch kind {
	case types.Bishop:
		return diagonalDirs[:]
	case types.Rook:
		return orthoDirs[:]
	case types.Queen:
		return queenDirs
	default:
		return nil
	}
}

// PseudoLegalMoves returns every target square reachable by p's
// geometry, ignoring whether it would leave p's own king in check
// (legality filtering is Board.LegalMoves, §4.C). Pawn promotions are
// NOT expanded here into the four promotion choices; that expansion
// happens in Board.LegalMoves, which emits one move per promotion kind.
func (b *Board) PseudoLegalMoves(p *Piece) []Move {
	switch p.Kind {
	case types.Pawn:
		return b.pawnMoves(p)
	case types.Knight:
		return b.offsetMoves(p, knightOffsets[:])
	case types.Bishop, types.Rook, types.Queen:
		return b.slidingMoves(p, dirsFor(p.Kind))
	case types.King:
		return b.kingMoves(p)
	default:
		return nil
	}
}

func (b *Board) pawnMoves(p *Piece) []Move {
	var moves []Move
	dir := p.Color.PawnDirection()
	startRow := 6
	promoRow := 0
	if p.Color == types.Black {
		startRow = 1
		promoRow = 7
	}

	one := p.Pos.Offset(dir, 0)
	if one.OnBoard() && b.PieceAt(one) == nil {
		moves = append(moves, Move{From: p.Pos, To: one})
		if p.Pos.Row == startRow {
			two := p.Pos.Offset(2*dir, 0)
			if b.PieceAt(two) == nil {
				moves = append(moves, Move{From: p.Pos, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := p.Pos.Offset(dir, dc)
		if !target.OnBoard() {
			continue
		}
		victim := b.PieceAt(target)
		isEnPassant := b.EnPassant != nil && *b.EnPassant == target
		if (victim != nil && victim.Color != p.Color) || isEnPassant {
			moves = append(moves, Move{From: p.Pos, To: target})
		}
	}

	_ = promoRow // promotion expansion happens in Board.LegalMoves
	return moves
}

func (b *Board) offsetMoves(p *Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, o := range offsets {
		target := p.Pos.Offset(o[0], o[1])
		if !target.OnBoard() {
			continue
		}
		victim := b.PieceAt(target)
		if victim == nil || victim.Color != p.Color {
			moves = append(moves, Move{From: p.Pos, To: target})
		}
	}
	return moves
}

func (b *Board) slidingMoves(p *Piece, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		for step := 1; ; step++ {
			target := p.Pos.Offset(d[0]*step, d[1]*step)
			if !target.OnBoard() {
				break
			}
			victim := b.PieceAt(target)
			if victim == nil {
				moves = append(moves, Move{From: p.Pos, To: target})
				continue
			}
			if victim.Color != p.Color {
				moves = append(moves, Move{From: p.Pos, To: target})
			}
			break
		}
	}
	return moves
}

func (b *Board) kingMoves(p *Piece) []Move {
	moves := b.offsetMoves(p, kingOffsets[:])

	// Filter out squares adjacent to the enemy king: no pseudo-legal
	// move may propose the two kings standing next to each other (§4.A).
	enemyKingSq, found := b.FindKing(p.Color.Opponent())
	if found {
		filtered := moves[:0]
		for _, m := range moves {
			if !isAdjacent(m.To, enemyKingSq) {
				filtered = append(filtered, m)
			}
		}
		moves = filtered
	}

	moves = append(moves, b.castlingMoves(p)...)
	return moves
}

func isAdjacent(a, c Square) bool {
	dr := a.Row - c.Row
	dc := a.Col - c.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

// castlingMoves returns the zero, one or two castling targets available
// to king p, per the seven preconditions of §4.A.
func (b *Board) castlingMoves(king *Piece) []Move {
	if king.HasMoved {
		return nil
	}
	backRank := 7
	if king.Color == types.Black {
		backRank = 0
	}
	if king.Pos.Row != backRank || king.Pos.Col != 4 {
		return nil
	}
	if b.IsSquareAttacked(king.Pos, king.Color.Opponent(), nil) {
		return nil
	}

	var moves []Move
	// kingside: rook at col 7
	if m, ok := b.castlingSide(king, backRank, 7, 5, 6); ok {
		moves = append(moves, m)
	}
	// queenside: rook at col 0
	if m, ok := b.castlingSide(king, backRank, 0, 3, 2); ok {
		moves = append(moves, m)
	}
	return moves
}

func (b *Board) castlingSide(king *Piece, backRank, rookCol, transitCol, destCol int) (Move, bool) {
	rookSq := SquareAt(backRank, rookCol)
	rook := b.PieceAt(rookSq)
	if rook == nil || rook.Kind != types.Rook || rook.Color != king.Color || rook.HasMoved {
		return Move{}, false
	}

	lo, hi := rookCol, king.Pos.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for c := lo + 1; c < hi; c++ {
		if b.PieceAt(SquareAt(backRank, c)) != nil {
			return Move{}, false
		}
	}

	// Every square the king passes through or lands on, plus its start
	// square, must not be attacked - using the ignore-the-moving-king
	// variant of the attack query, so a slider whose ray runs through
	// the king's own start square is not blocked by the king that is
	// about to vacate it (§4.A).
	enemy := king.Color.Opponent()
	for _, sq := range []Square{king.Pos, SquareAt(backRank, transitCol), SquareAt(backRank, destCol)} {
		if b.IsSquareAttacked(sq, enemy, &king.Pos) {
			return Move{}, false
		}
	}

	return Move{From: king.Pos, To: SquareAt(backRank, destCol)}, true
}
