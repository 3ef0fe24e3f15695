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

// Package evaluator implements the static position evaluator: material,
// piece-square tables, mobility, king safety and pawn structure, weighted
// and summed into a single types.Value from the mover's perspective
// (§4.D). Component D of the system overview.
package evaluator

import (
	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/config"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/types"
)

var log = logging.GetLog()

// Evaluate scores b from side's perspective: positive favors side.
// Terminal positions are handled by the caller (search); this function
// is the "otherwise" weighted sum §4.D describes.
func Evaluate(b *board.Board, side types.Color) types.Value {
	opp := side.Opponent()

	endgame := isEndgame(b)
	material := materialScore(b, side) - materialScore(b, opp)
	psqt := psqtScore(b, side, endgame) - psqtScore(b, opp, endgame)
	mobility := len(b.LegalMoves(side)) - len(b.LegalMoves(opp))
	kingSafety := kingSafetyScore(b, side, opp)
	pawns := (pawnCount(b, side) - pawnCount(b, opp)) * 10

	w := config.Settings.Eval
	total := w.MaterialWeight*float64(material) +
		w.PsqtWeight*float64(psqt) +
		w.MobilityWeight*float64(mobility) +
		w.KingSafetyWeight*float64(kingSafety) +
		w.PawnStructWeight*float64(pawns)

	return types.Value(total)
}

func materialScore(b *board.Board, color types.Color) int {
	total := 0
	for _, p := range b.Pieces(color) {
		total += p.Kind.MaterialValue()
	}
	return total
}

func pawnCount(b *board.Board, color types.Color) int {
	count := 0
	for _, p := range b.Pieces(color) {
		if p.Kind == types.Pawn {
			count++
		}
	}
	return count
}

func kingSafetyScore(b *board.Board, side, opp types.Color) int {
	score := 0
	if b.InCheck(side) {
		score -= 30
	}
	if b.InCheck(opp) {
		score += 20
	}
	return score
}

// isEndgame reports whether both sides have at most one major piece
// (Q or R), the joint condition that switches both kings' PSQT to the
// endgame table (§4.D). It is computed once per position, never per
// color: one side being down to bare material doesn't put the other
// side's king in an endgame by itself.
func isEndgame(b *board.Board) bool {
	return majorCount(b, types.White) <= 1 && majorCount(b, types.Black) <= 1
}

func majorCount(b *board.Board, color types.Color) int {
	majors := 0
	for _, p := range b.Pieces(color) {
		if p.Kind == types.Queen || p.Kind == types.Rook {
			majors++
		}
	}
	return majors
}

func psqtScore(b *board.Board, color types.Color, endgame bool) int {
	total := 0
	for _, p := range b.Pieces(color) {
		total += pieceSquareValue(p, color, endgame)
	}
	return total
}

func pieceSquareValue(p *board.Piece, color types.Color, endgame bool) int {
	table := tableFor(p.Kind, endgame)
	row := p.Pos.Row
	if color == types.Black {
		row = 7 - row
	}
	return table[row][p.Pos.Col]
}

func tableFor(kind types.PieceKind, endgame bool) *[8][8]int {
	switch kind {
	case types.Pawn:
		return &pawnTable
	case types.Knight:
		return &knightTable
	case types.Bishop:
		return &bishopTable
	case types.Rook:
		return &rookTable
	case types.Queen:
		return &queenTable
	case types.King:
		if endgame {
			return &kingEndgameTable
		}
		return &kingMiddlegameTable
	default:
		return &zeroTable
	}
}
