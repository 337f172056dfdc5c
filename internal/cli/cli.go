/*
Package cli implements skyc's two operating modes: file mode lexes and
parses one source file
and writes its dump; REPL mode does the same per line, with no
evaluation step in either mode — this repo has no semantic passes.
*/
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/akashmaji946/skyfront/ast"
	"github.com/akashmaji946/skyfront/diag"
	"github.com/akashmaji946/skyfront/dump"
	"github.com/akashmaji946/skyfront/lexer"
	"github.com/akashmaji946/skyfront/parser"
)

const (
	version = "v0.1.0"
	prompt  = "sky >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   _____ _____  __ __ ______ _____   ____  _   _ _______
  / ____|  __ \|  \/  |  ____/ ____| / __ \| \ | |__   __|
 | (___ | |__) | \  / | |__ | |     | |  | |  \| |  | |
  \___ \|  ___/| |\/| |  __|| |     | |  | | . \ |  | |
  ____) | |    | |  | | |   | |____ | |__| | |\  |  | |
 |_____/|_|    |_|  |_|_|    \_____| \____/|_| \_|  |_|
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

// Options is the driver's full flag surface, parsed by cmd/skyc's main
// from the standard flag package.
type Options struct {
	File    string // source path; "" selects REPL mode
	DumpOut string // DOT output path ("out.dot" by default); "-" writes to stdout
	Debug   bool   // also print the spew struct dump
}

// Run dispatches to file mode or REPL mode and returns a process exit
// code.
func Run(opts Options) int {
	if opts.File == "" {
		runRepl()
		return 0
	}
	return runFile(opts)
}

func runFile(opts Options) int {
	src, err := os.ReadFile(opts.File)
	if err != nil {
		log.Printf("[FILE ERROR] could not read %q: %v", opts.File, err)
		return 1
	}

	sink := diag.NewStderrSink(os.Stderr, os.Stderr.Fd())
	unit := parseSource(opts.File, string(src), sink)

	if sink.ErrorCount > 0 {
		redColor.Fprintf(os.Stderr, "%d error(s), %d warning(s)\n", sink.ErrorCount, sink.WarningCount)
		return 1
	}
	if sink.WarningCount > 0 {
		yellowColor.Fprintf(os.Stderr, "%d warning(s)\n", sink.WarningCount)
	}

	writeDump(os.Stdout, unit, opts)
	return 0
}

// writeDump emits the DOT graph (to opts.DumpOut, or stdout for "-")
// and, when opts.Debug is set, the spew companion dump.
func writeDump(stdout io.Writer, unit *ast.Unit, opts Options) {
	dot := dump.Dump(unit)
	switch opts.DumpOut {
	case "-", "":
		fmt.Fprint(stdout, dot)
	default:
		if err := os.WriteFile(opts.DumpOut, []byte(dot), 0o644); err != nil {
			redColor.Fprintf(os.Stderr, "[DUMP ERROR] could not write %q: %v\n", opts.DumpOut, err)
		} else {
			cyanColor.Fprintf(os.Stderr, "wrote %s\n", opts.DumpOut)
		}
	}
	if opts.Debug {
		fmt.Fprint(stdout, dump.Spew(unit))
	}
}

func runRepl() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		log.Fatalf("[REPL ERROR] %v", err)
	}
	defer rl.Close()

	isTTY := isatty.IsTerminal(os.Stdout.Fd())

	for {
		text, err := rl.Readline()
		if err != nil {
			os.Stdout.Write([]byte("Good Bye!\n"))
			return
		}
		text = strings.Trim(text, " \n\t\r")
		if text == "" {
			continue
		}
		if text == ".exit" {
			os.Stdout.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(text)
		evalLine(os.Stdout, text, isTTY)
	}
}

// evalLine lexes and parses one REPL line and prints its DOT dump. The
// recover keeps the REPL running after a bad line instead of exiting.
func evalLine(out io.Writer, text string, isTTY bool) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(out, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	sink := diag.NewConsoleSink(out, isTTY)
	unit := parseSource("<repl>", text, sink)
	if sink.ErrorCount > 0 {
		return
	}
	greenColor.Fprint(out, dump.Dump(unit))
}

func parseSource(path, src string, sink diag.Sink) *ast.Unit {
	sc := lexer.NewScanner(path, src, sink)
	return parser.ParseUnit(path, src, sc, sink)
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "skyc %s\n", version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Enter code and press enter; its parsed tree is dumped as DOT.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}
