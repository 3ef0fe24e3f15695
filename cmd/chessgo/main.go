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

package main

import (
	"bufio"
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidae/chessgo/board"
	"github.com/corvidae/chessgo/config"
	"github.com/corvidae/chessgo/game"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/search"
	"github.com/corvidae/chessgo/types"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config/chessgo.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	aiColorFlag := flag.String("aicolor", "black", "side the built-in search plays (white|black|none)")
	depth := flag.Int("depth", 0, "search depth; 0 uses the configured default")
	cpuProfile := flag.Bool("cpuprofile", false, "write a cpu.pprof of the session on exit")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		logging.StandardLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		logging.SearchLevel = lvl
	}
	log := logging.GetLog()

	aiOpponent := true
	aiColor := types.Black
	switch strings.ToLower(*aiColorFlag) {
	case "white":
		aiColor = types.White
	case "black":
		aiColor = types.Black
	case "none":
		aiOpponent = false
	default:
		out.Printf("unknown -aicolor %q, defaulting to black\n", *aiColorFlag)
	}

	g := game.NewGame(aiOpponent, aiColor, *depth)
	g.SetSearcher(search.NewEngine())

	log.Infof("chessgo starting, ai=%v aicolor=%s depth=%d", aiOpponent, aiColor, *depth)
	runREPL(g)
}

// runREPL drives Game's public API from line-oriented stdin commands.
// This is a thin demo shell, not a UI: "e2e4" / "e7e8q" plays a move,
// "undo" reverts the last one, "board" prints the position, "moves"
// lists legal moves for the side to move, and "quit" exits.
func runREPL(g *game.Game) {
	printBoard(g.Board)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		out.Printf("%s to move> ", g.Turn)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit", "exit":
			return
		case "board":
			printBoard(g.Board)
			continue
		case "moves":
			printMoves(g)
			continue
		case "undo":
			if !g.UndoMove() {
				out.Println("nothing to undo")
			}
			printBoard(g.Board)
			continue
		}

		if !applyMoveCommand(g, line) {
			out.Println("unrecognized move, expected e.g. e2e4 or e7e8q")
			continue
		}
		printBoard(g.Board)
		reportGameState(g)
	}
}

func applyMoveCommand(g *game.Game, line string) bool {
	if len(line) < 4 {
		return false
	}
	from, ok := board.ParseSquare(line[0:2])
	if !ok {
		return false
	}
	to, ok := board.ParseSquare(line[2:4])
	if !ok {
		return false
	}
	promotion := types.NoPieceKind
	if len(line) >= 5 {
		promotion = types.PromotionKindFromLetter(line[4])
	}
	return g.PlayMove(from, to, promotion)
}

func reportGameState(g *game.Game) {
	if g.InCheckmate(g.Turn) {
		out.Printf("checkmate - %s has no moves\n", g.Turn)
	} else if g.InStalemate(g.Turn) {
		out.Println("stalemate")
	} else if g.InCheck(g.Turn) {
		out.Printf("%s is in check\n", g.Turn)
	}
}

func printMoves(g *game.Game) {
	for _, m := range g.LegalMoves(g.Turn) {
		out.Printf("%s%s ", m.From, m.To)
	}
	out.Println()
}

func printBoard(b *board.Board) {
	for row := 0; row < 8; row++ {
		out.Printf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.SquareAt(row, col))
			out.Print(glyph(p))
		}
		out.Println()
	}
	out.Println("  a b c d e f g h")
}

func glyph(p *board.Piece) string {
	if p == nil {
		return ". "
	}
	letter := p.Kind.Letter()
	if letter == "" {
		letter = "P"
	}
	if p.Color == types.Black {
		letter = strings.ToLower(letter)
	}
	return letter + " "
}

func printVersionInfo() {
	out.Println("chessgo")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
