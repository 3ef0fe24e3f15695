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

// Package ordering scores and sorts candidate moves so alpha-beta prunes
// as much of the tree as possible: PV hits, MVV-LVA captures with a
// static-exchange bonus, killer moves, promotions, check-giving moves,
// history heuristic and small positional bonuses (§4.E). Component E of
// the system overview.
package ordering

import (
	"sort"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
)

const (
	pvBonus                    = 100000
	captureBase                = 10000
	seeBonus                   = 500
	killerBonus                = 9000
	promotionBase              = 8500
	checkBonus                 = 7000
	historyCap                 = 8000
	centralBonus               = 100
	developmentBonus           = 500
	developmentCutoffFullMoves = 10
)

// Killers holds two killer-move slots per ply; the most recently
// recorded cutoff move is the primary slot, bumping the previous primary
// into the secondary slot (§4.E).
type Killers struct {
	slots [][2]board.Move
}

// NewKillers allocates a killer table sized for maxPly plies.
func NewKillers(maxPly int) *Killers {
	return &Killers{slots: make([][2]board.Move, maxPly)}
}

// Record registers mv as a cutoff move at ply, provided it's not already
// the primary killer there (avoids demoting a slot to itself).
func (k *Killers) Record(ply int, mv board.Move) {
	if ply < 0 || ply >= len(k.slots) {
		return
	}
	if k.slots[ply][0] == mv {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = mv
}

func (k *Killers) isKiller(ply int, mv board.Move) bool {
	if ply < 0 || ply >= len(k.slots) {
		return false
	}
	return k.slots[ply][0] == mv || k.slots[ply][1] == mv
}

// History is the (from, to) cutoff-credit table used for history-
// heuristic ordering, keyed by the packed 12-bit coordinate pair §9
// describes.
type History map[uint16]int

func NewHistory() History {
	return make(History)
}

func historyKey(from, to board.Square) uint16 {
	return uint16(from.Row<<9 | from.Col<<6 | to.Row<<3 | to.Col)
}

// Bump adds depth^2 cutoff credit for a non-capture that caused a
// beta/alpha cutoff at this depth (§4.F).
func (h History) Bump(from, to board.Square, depth int) {
	h[historyKey(from, to)] += depth * depth
}

func (h History) get(from, to board.Square) int {
	return h[historyKey(from, to)]
}

// PV maps (board-hash, depth) to the move that was best there last
// iteration, consulted for the +100000 PV-hit bonus.
type PV map[uint64]board.Move

func NewPV() PV {
	return make(PV)
}

func pvKey(boardHash uint64, depth int) uint64 {
	return boardHash*131 + uint64(depth)
}

func (p PV) Lookup(boardHash uint64, depth int) (board.Move, bool) {
	mv, ok := p[pvKey(boardHash, depth)]
	return mv, ok
}

func (p PV) Record(boardHash uint64, depth int, mv board.Move) {
	p[pvKey(boardHash, depth)] = mv
}

// Context bundles everything Score needs beyond the move itself.
type Context struct {
	Board      *board.Board
	Side       types.Color
	Ply, Depth int
	BoardHash  uint64
	Killers    *Killers
	History    History
	PV         PV
	FullMoves  int
}

// Score computes the §4.E ordering score for mv played by Side at ply.
func Score(ctx Context, mv board.Move) int {
	score := 0

	if pvMove, ok := ctx.PV.Lookup(ctx.BoardHash, ctx.Depth); ok && pvMove == mv {
		score += pvBonus
	}

	victim := ctx.Board.PieceAt(mv.To)
	attacker := ctx.Board.PieceAt(mv.From)
	isCapture := victim != nil
	if isCapture {
		mvvLva := 10*victim.Kind.MaterialValue() - attacker.Kind.MaterialValue()
		score += captureBase + mvvLva
		if seeFavorable(ctx.Board, mv, victim, attacker) {
			score += seeBonus
		}
	}

	if !isCapture && ctx.Killers != nil && ctx.Killers.isKiller(ctx.Ply, mv) {
		score += killerBonus
	}

	if mv.Promotion != types.NoPieceKind {
		score += promotionBase + mv.Promotion.MaterialValue()
	}

	if givesCheck(ctx.Board, mv, ctx.Side) {
		score += checkBonus
	}

	if ctx.History != nil {
		h := ctx.History.get(mv.From, mv.To)
		if h > historyCap {
			h = historyCap
		}
		score += h
	}

	score += positionalBonus(mv, attacker, ctx.FullMoves)

	return score
}

// Sort orders moves by descending Score, highest-scoring first.
func Sort(ctx Context, moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return Score(ctx, moves[i]) > Score(ctx, moves[j])
	})
}

// seeFavorable is the "simple static-exchange check" §4.E calls for: the
// capture is favorable if the victim is worth at least as much as the
// attacker, or there is no piece of the opposite color able to recapture
// on the destination square.
func seeFavorable(b *board.Board, mv board.Move, victim, attacker *board.Piece) bool {
	if victim.Kind.MaterialValue() >= attacker.Kind.MaterialValue() {
		return true
	}
	clone := b.Copy()
	clone.MovePiece(mv.From, mv.To, types.Queen)
	return !clone.IsSquareAttacked(mv.To, victim.Color, nil)
}

func givesCheck(b *board.Board, mv board.Move, side types.Color) bool {
	clone := b.Copy()
	clone.MovePiece(mv.From, mv.To, mv.Promotion)
	return clone.InCheck(side.Opponent())
}

func positionalBonus(mv board.Move, attacker *board.Piece, fullMoves int) int {
	bonus := 0
	if isCentral(mv.To) {
		bonus += centralBonus
	}
	if attacker != nil && fullMoves <= developmentCutoffFullMoves &&
		(attacker.Kind == types.Knight || attacker.Kind == types.Bishop) && !attacker.HasMoved {
		bonus += developmentBonus
	}
	return bonus
}

func isCentral(sq board.Square) bool {
	return sq.Row >= 3 && sq.Row <= 4 && sq.Col >= 3 && sq.Col <= 4
}
