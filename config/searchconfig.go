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

package config

// searchConfiguration holds the tunables for the search core (§4.F).
type searchConfiguration struct {
	// Depth is the nominal iterative-deepening target passed to
	// choose_move; adaptive depth (§4.F) scales around it.
	Depth int

	// MoveTimeMS is the soft wall-clock budget per choose_move call,
	// enforced as the "> 5s" cutoff of §4.F step 3 (configurable rather
	// than hardwired so tests can run with a tighter budget).
	MoveTimeMS int

	// QuiescenceDepth bounds the capture-only extension beyond the
	// nominal depth (§4.F).
	QuiescenceDepth int

	// TTSizeMB sizes the transposition table (§3 TTEntry, §4.F).
	TTSizeMB int
}

func defaultSearchConfig() searchConfiguration {
	return searchConfiguration{
		Depth:           4,
		MoveTimeMS:      5000,
		QuiescenceDepth: 3,
		TTSizeMB:        32,
	}
}

// Difficulty is a supplemented feature from the original GUI
// (chess_gui.py's strength selector): a named preset mapping to a
// search depth and time budget.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultySettings maps a difficulty preset to concrete search limits.
var DifficultySettings = map[Difficulty]searchConfiguration{
	Easy:   {Depth: 2, MoveTimeMS: 1000, QuiescenceDepth: 2, TTSizeMB: 8},
	Medium: {Depth: 4, MoveTimeMS: 5000, QuiescenceDepth: 3, TTSizeMB: 32},
	Hard:   {Depth: 6, MoveTimeMS: 5000, QuiescenceDepth: 3, TTSizeMB: 64},
}
