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
	cfgpkg "github.com/corvidae/chessgo/config"
)

// searchTunables is a package-local copy of config.Settings.Search's
// exported fields. ChooseMove, minimax and quiescence read tunables
// through config() below; this file is the only one in the package that
// imports the config package, under the name cfgpkg, since config is
// taken by that function.
type searchTunables struct {
	Depth           int
	MoveTimeMS      int
	QuiescenceDepth int
	TTSizeMB        int
}

// config returns the current search tunables from config.Settings.
func config() searchTunables {
	c := cfgpkg.Settings.Search
	return searchTunables{
		Depth:           c.Depth,
		MoveTimeMS:      c.MoveTimeMS,
		QuiescenceDepth: c.QuiescenceDepth,
		TTSizeMB:        c.TTSizeMB,
	}
}
