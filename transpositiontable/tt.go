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

// Package transpositiontable implements the search's position cache: an
// always-replace hash map, with no capacity limit, keyed by a positional string
// hash (not Zobrist - see the module's design notes on why the source's
// string-hash key is preserved rather than switched to incremental
// hashing). TTEntry is part of the SearchState described in §3.
package transpositiontable

import (
	"hash/fnv"

	"github.com/corvidae/chessgo/board"
)

// Bound tags which side of the search window an entry's score is exact
// or merely a bound on.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

// Entry is a cached position's search result (§3).
type Entry struct {
	Depth int
	Score int
	Bound Bound
}

// Table is a simple Go map wrapping always-replace semantics: a Store
// call simply overwrites whatever was keyed there before. It has no fixed
// capacity and never evicts; the map grows with the number of distinct
// positions stored during one search call.
type Table struct {
	entries map[uint64]Entry
}

// New returns an empty table. sizeMB is accepted for parity with the
// configured Search.TTSizeMB knob but only used to presize the map's
// bucket count as a rough hint; Go maps do not take a hard byte budget.
func New(sizeMB int) *Table {
	hint := sizeMB * 1024 // a rough entries-per-MB guess, not load-bearing
	if hint <= 0 || hint > 1<<20 {
		hint = 4096
	}
	return &Table{entries: make(map[uint64]Entry, hint)}
}

func (t *Table) Probe(key uint64) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

func (t *Table) Store(key uint64, e Entry) {
	t.entries[key] = e
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Key derives the transposition key for b: scan the 64 squares emitting
// ' ' for empty or a letter per piece (lowercase black, uppercase white;
// 'n' for knight to disambiguate from king), append "e{row}{col}" for an
// en-passant target if present, then hash the string. Side-to-move is
// deliberately NOT part of the key - preserved source behavior; see the
// module's design notes open question on key collisions across sides.
func Key(b *board.Board) uint64 {
	buf := make([]byte, 0, 72)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.SquareAt(row, col))
			if p == nil {
				buf = append(buf, ' ')
				continue
			}
			buf = append(buf, pieceLetter(p)...)
		}
	}
	if b.EnPassant != nil {
		buf = append(buf, 'e')
		buf = append(buf, byte('0'+b.EnPassant.Row))
		buf = append(buf, byte('0'+b.EnPassant.Col))
	}

	h := fnv.New64a()
	h.Write(buf)
	return h.Sum64()
}

func pieceLetter(p *board.Piece) []byte {
	letter := p.String()
	return []byte(letter)
}
