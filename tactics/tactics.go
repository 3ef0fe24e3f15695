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

// Package tactics computes pin/fork/skewer hints for the front end. It
// is never called from the search core (§4.G) - component G of the
// system overview, a pure on-demand query over a board.Board.
package tactics

import (
	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/types"
)

// Report is the {pins, forks, skewers} triple game.DetectTactics returns.
type Report struct {
	Pins    []Pin
	Forks   []Fork
	Skewers []Skewer
}

// Pin names a side-to-move piece that cannot move without exposing its
// own king to attack.
type Pin struct {
	Square board.Square
	Kind   types.PieceKind
}

// Fork names an opponent piece simultaneously attacking two or more of
// side-to-move's pieces.
type Fork struct {
	Square  board.Square
	Targets []board.Square
}

// Skewer names an opponent sliding piece, the more valuable front piece
// it attacks, and the less valuable piece standing behind it on the same
// line.
type Skewer struct {
	Attacker board.Square
	Front    board.Square
	Back     board.Square
}

// Detect computes the full tactics report for the side to move.
func Detect(b *board.Board, side types.Color) Report {
	return Report{
		Pins:    detectPins(b, side),
		Forks:   detectForks(b, side),
		Skewers: detectSkewers(b, side),
	}
}

func detectPins(b *board.Board, side types.Color) []Pin {
	var pins []Pin
	for _, p := range b.Pieces(side) {
		moves := b.PseudoLegalMoves(p)
		if len(moves) == 0 {
			continue
		}
		allExpose := true
		for _, m := range moves {
			clone := b.Copy()
			clone.MovePiece(m.From, m.To, types.Queen)
			kingSq, found := clone.FindKing(side)
			if !found || !clone.IsSquareAttacked(kingSq, side.Opponent(), nil) {
				allExpose = false
				break
			}
		}
		if allExpose {
			pins = append(pins, Pin{Square: p.Pos, Kind: p.Kind})
		}
	}
	return pins
}

func detectForks(b *board.Board, side types.Color) []Fork {
	var forks []Fork
	for _, p := range b.Pieces(side.Opponent()) {
		var targets []board.Square
		for _, m := range b.PseudoLegalMoves(p) {
			victim := b.PieceAt(m.To)
			if victim != nil && victim.Color == side {
				targets = append(targets, m.To)
			}
		}
		if len(targets) >= 2 {
			forks = append(forks, Fork{Square: p.Pos, Targets: targets})
		}
	}
	return forks
}

func detectSkewers(b *board.Board, side types.Color) []Skewer {
	var skewers []Skewer
	dirs := [8][2]int{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
	for _, p := range b.Pieces(side.Opponent()) {
		if !p.Kind.IsSlider() {
			continue
		}
		for _, d := range dirs {
			if !alignedWithSlider(p.Kind, d) {
				continue
			}
			front, back, ok := firstTwoOnLine(b, p.Pos, d, side)
			if ok && front.piece.Kind.MaterialValue() > back.piece.Kind.MaterialValue() {
				skewers = append(skewers, Skewer{Attacker: p.Pos, Front: front.sq, Back: back.sq})
			}
		}
	}
	return skewers
}

func alignedWithSlider(kind types.PieceKind, d [2]int) bool {
	diagonal := d[0] != 0 && d[1] != 0
	if kind == types.Bishop {
		return diagonal
	}
	if kind == types.Rook {
		return !diagonal
	}
	return true // queen
}

type lineHit struct {
	sq    board.Square
	piece *board.Piece
}

// firstTwoOnLine walks from sq along d and returns the first two pieces
// encountered, provided both belong to side (the skewer target color).
func firstTwoOnLine(b *board.Board, sq board.Square, d [2]int, side types.Color) (lineHit, lineHit, bool) {
	var hits []lineHit
	for step := 1; step <= 7; step++ {
		cur := sq.Offset(d[0]*step, d[1]*step)
		if !cur.OnBoard() {
			break
		}
		p := b.PieceAt(cur)
		if p == nil {
			continue
		}
		hits = append(hits, lineHit{sq: cur, piece: p})
		if len(hits) == 2 {
			break
		}
	}
	if len(hits) != 2 {
		return lineHit{}, lineHit{}, false
	}
	if hits[0].piece.Color != side || hits[1].piece.Color != side {
		return lineHit{}, lineHit{}, false
	}
	return hits[0], hits[1], true
}
