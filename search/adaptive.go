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

package search

import (
	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
)

// adaptiveDepth scales the nominal per-iteration depth up or down around
// cfgDepth based on how "sharp" the position looks, per §4.F: fewer
// legal replies, being in check, the endgame, a capture-heavy position,
// a previous-iteration root score beyond 150 in either direction, or a
// material imbalance above 300 all push the search deeper, since those
// positions are cheaper to search per node or more likely to hide a
// tactic. The score test looks only at the size of prevScore; it does
// not compare it with any earlier iteration's score, so a change in
// score between iterations is not measured. The iteration counter itself is left
// untouched - only the depth that iteration searches to is adjusted.
// The result is clamped to [max(1, cfgDepth-1), cfgDepth+3].
func adaptiveDepth(b *board.Board, side types.Color, iteration, cfgDepth int, legal []board.Move, prevScore types.Value) int {
	factor := 1.0

	if len(legal) <= 8 {
		factor *= 1.3
	}
	if b.InCheck(side) {
		factor *= 1.3
	}
	if isEndgamePosition(b) {
		factor *= 1.3
	}
	if captureFraction(legal, b) > 0.3 {
		factor *= 1.2
	}
	if prevScore != 0 && abs32(int32(prevScore)) > 150 {
		factor *= 1.25
	}
	if materialImbalance(b) > 300 {
		factor *= 1.1
	}

	scaled := int(float64(iteration) * factor)
	lo := cfgDepth - 1
	if lo < 1 {
		lo = 1
	}
	hi := cfgDepth + 3
	if scaled < iteration {
		scaled = iteration
	}
	return clampDepth(scaled, lo, hi)
}

func isEndgamePosition(b *board.Board) bool {
	majors := 0
	for _, p := range append(b.Pieces(types.White), b.Pieces(types.Black)...) {
		if p.Kind == types.Queen || p.Kind == types.Rook {
			majors++
		}
	}
	return majors <= 2
}

func captureFraction(legal []board.Move, b *board.Board) float64 {
	if len(legal) == 0 {
		return 0
	}
	captures := 0
	for _, m := range legal {
		if b.PieceAt(m.To) != nil {
			captures++
		}
	}
	return float64(captures) / float64(len(legal))
}

func materialImbalance(b *board.Board) int {
	var white, black int
	for _, p := range b.Pieces(types.White) {
		white += int(p.Kind.MaterialValue())
	}
	for _, p := range b.Pieces(types.Black) {
		black += int(p.Kind.MaterialValue())
	}
	diff := white - black
	if diff < 0 {
		diff = -diff
	}
	return diff
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
