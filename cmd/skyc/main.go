/*
Package main is skyc's entry point: parse flags, hand off to
internal/cli. A thin dispatch layer built on the standard flag
package, since the driver has real optional flags to parse.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/skyfront/internal/cli"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: skyc [-dump path] [-debug] [file]")
	flag.PrintDefaults()
}

func main() {
	dumpOut := flag.String("dump", "out.dot", "write the DOT graph to this path ('-' prints to stdout)")
	debug := flag.Bool("debug", false, "also print a go-spew dump of the raw AST")
	flag.Usage = usage
	flag.Parse()

	opts := cli.Options{
		DumpOut: *dumpOut,
		Debug:   *debug,
	}
	if flag.NArg() > 0 {
		opts.File = flag.Arg(0)
	}

	os.Exit(cli.Run(opts))
}
