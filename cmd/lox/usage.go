package main

import (
	"flag"
	"fmt"
	"io"
)

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lox [flags]            start an interactive session")
	fmt.Fprintln(w, "  lox [flags] <script>   run a script file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
