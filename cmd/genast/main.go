// Command genast regenerates the syntax tree node types from a grammar table.
//
//	genast [-grammar file.yml] [-check] <output dir>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lpahlavi/jlox/pkg/astgen"
	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/grammar"
)

// exitStale is returned by -check when generated files differ from disk.
const exitStale = 1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	grammarPath := fs.String("grammar", "", "grammar table (defaults to the embedded Lox grammar)")
	check := fs.Bool("check", false, "report stale files instead of writing them")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: genast [-grammar file.yml] [-check] <output dir>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return diag.ExitOK
		}
		return diag.ExitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return diag.ExitUsage
	}
	outputDir := fs.Arg(0)

	table, err := loadTable(*grammarPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, os.ErrNotExist) {
			return diag.ExitNoInput
		}
		return diag.ExitDataErr
	}
	declared, err := astgen.DeclaredNames(outputDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return diag.ExitDataErr
	}
	files, err := astgen.Generate(table, declared...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return diag.ExitDataErr
	}

	if *check {
		diffs, err := astgen.Check(outputDir, files)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return diag.ExitIOErr
		}
		for _, d := range diffs {
			fmt.Fprint(stdout, d)
		}
		if len(diffs) > 0 {
			fmt.Fprintf(stderr, "genast: %d file(s) out of date in %s\n", len(diffs), outputDir)
			return exitStale
		}
		return diag.ExitOK
	}

	if err := astgen.WriteFiles(outputDir, files); err != nil {
		fmt.Fprintln(stderr, err)
		return diag.ExitCantCreate
	}
	return diag.ExitOK
}

func loadTable(path string) (grammar.Table, error) {
	if path == "" {
		return grammar.Default()
	}
	return grammar.Load(path)
}
