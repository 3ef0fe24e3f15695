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

import (
	"github.com/op/go-logging"

	chessgologging "github.com/corvidae/chessgo/logging"
)

type logConfiguration struct {
	Level       string
	SearchLevel string
}

func defaultLogConfig() logConfiguration {
	return logConfiguration{Level: "info", SearchLevel: "info"}
}

// LogLevels maps the string levels a config file may use to go-logging's
// Level type.
var LogLevels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// applyLogLevels pushes the decoded (or default) log level strings into
// the logging package's level variables, which GetLog/GetSearchLog read
// on every call.
func applyLogLevels() {
	if lvl, found := LogLevels[Settings.Log.Level]; found {
		chessgologging.StandardLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.SearchLevel]; found {
		chessgologging.SearchLevel = lvl
	}
}
