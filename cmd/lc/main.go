package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lalgc/lalg-compiler/files"
	"github.com/lalgc/lalg-compiler/llp"
)

func usage() {
	printVersion()
	fail(`
Analyzes one or more LALG programs and prints their symbol table
and quadruple code listing, or writes them to listing files (.smb, .quad).

Usage:
    lc [-q] [-o dir] srcfile...

Flags:
    -o  Writes <program>.smb and <program>.quad into dir instead of printing.
    -q  Suppresses the progress log.

Examples:
    lc test.lalg
    lc -o out A.lalg B.lalg
    lc *.lalg`)
}

type outcome struct {
	log bytes.Buffer
	res *llp.Result
}

func main() {
	outDir := flag.String("o", "", "writes listing files into dir")
	quiet := flag.Bool("q", false, "suppresses the progress log")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	if !*quiet {
		printVersion()
	}
	// every file is an independent pass with its own parser state
	outs := make([]*outcome, flag.NArg())
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, arg := range flag.Args() {
		arg := arg
		out := &outcome{}
		outs[i] = out
		g.Go(func() error {
			var w io.Writer = &out.log
			if *quiet {
				w = io.Discard
			}
			res, err := llp.CompileFile(arg, w)
			if err != nil {
				return fmt.Errorf("%s:%w", arg, err)
			}
			out.res = res
			return nil
		})
	}
	err := g.Wait()
	for _, out := range outs {
		_, _ = os.Stdout.Write(out.log.Bytes())
		if out.res != nil {
			check(emit(out.res, *outDir))
		}
	}
	check(err)
}

func emit(res *llp.Result, dir string) error {
	if dir != "" {
		return files.WriteListings(dir, res.Name, res.Symbols, res.Code)
	}
	if err := files.WriteSymbols(os.Stdout, res.Symbols); err != nil {
		return err
	}
	return files.WriteCode(os.Stdout, res.Code)
}

func printVersion() {
	fmt.Println("LALG Compiler; quadruple front end")
}

func check(err error) {
	if err != nil {
		fail(err)
	}
}

func fail(msg interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
