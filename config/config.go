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

// Package config holds the engine's tunable settings: search limits,
// evaluation weights and logging levels. Settings reads no environment
// of its own (per §6 the core reads no environment) - it only decodes a
// TOML file that the caller points it at, and falls back to built-in
// defaults when that file is absent.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/corvidae/chessgo/util"
)

// ConfFile is the path Setup() decodes from. Callers (e.g. cmd/chessgo)
// may overwrite this before calling Setup.
var ConfFile = "./config/chessgo.toml"

// Settings is the global configuration, populated by Setup.
var Settings = conf{
	Log:    defaultLogConfig(),
	Search: defaultSearchConfig(),
	Eval:   defaultEvalConfig(),
}

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup decodes ConfFile into Settings, leaving defaults in place for
// anything the file doesn't specify or if the file can't be found at
// all. Idempotent: a second call is a no-op.
func Setup() {
	if initialized {
		return
	}
	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("chessgo: config file malformed, using defaults:", err)
		}
	}
	applyLogLevels()
	initialized = true
}
