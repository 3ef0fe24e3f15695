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

// Package search implements the engine's single public decision
// function: iterative-deepening alpha-beta with a transposition table,
// quiescence search, adaptive depth and the ordering heuristics of
// ordering.Score (§4.F). Component F of the system overview; it is the
// only package that calls all of board, evaluator and ordering together.
package search

import (
	"time"

	"github.com/corvidae/chessgo/ordering"
	"github.com/corvidae/chessgo/transpositiontable"
	"github.com/corvidae/chessgo/types"
)

// state is rebuilt fresh on every top-level ChooseMove call and
// discarded on return, per §3 and §5: nothing here may outlive one call.
type state struct {
	nodes         int
	tt            *transpositiontable.Table
	killers       *ordering.Killers
	history       ordering.History
	pv            ordering.PV
	prevRootScore types.Value
	deadline      time.Time
}

func newState(ttSizeMB, maxPly int, moveTimeMS int) *state {
	return &state{
		tt:       transpositiontable.New(ttSizeMB),
		killers:  ordering.NewKillers(maxPly),
		history:  ordering.NewHistory(),
		pv:       ordering.NewPV(),
		deadline: time.Now().Add(time.Duration(moveTimeMS) * time.Millisecond),
	}
}

func (s *state) timeUp() bool {
	return time.Now().After(s.deadline)
}
