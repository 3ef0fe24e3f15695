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

// Package logging is a thin helper around "github.com/op/go-logging" so
// every package gets a correctly leveled, consistently formatted logger
// in one line instead of repeating backend setup everywhere.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	standardLog = logging.MustGetLogger("chessgo")
	searchLog   = logging.MustGetLogger("search")

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s} %{level:-7.7s} %{message}`,
	)
)

// StandardLevel and SearchLevel are set by config.Setup; each call to
// GetLog/GetSearchLog applies the current value to the shared logger.
// Packages that fetch their logger at init do so before Setup runs, so
// until GetLog/GetSearchLog is called again they log at the default,
// INFO, which keeps the engine quiet with zero configuration present.
var (
	StandardLevel = logging.INFO
	SearchLevel   = logging.INFO
)

func backend(level logging.Level) logging.Backend {
	raw := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	return leveled
}

// GetLog returns the standard logger used by game/board/evaluator and
// cmd/chessgo.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(StandardLevel))
	return standardLog
}

// GetSearchLog returns the logger used by the search package, kept
// separate so search tracing can be turned up without flooding
// everything else.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(SearchLevel))
	return searchLog
}
