package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/driver"
	"github.com/lpahlavi/jlox/pkg/parser"
	"github.com/lpahlavi/jlox/pkg/runtime"
	"github.com/lpahlavi/jlox/pkg/scanner"
)

// lineReader is satisfied by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// streamReader reads entries from a non-terminal input without prompting.
type streamReader struct {
	sc *bufio.Scanner
}

func (r *streamReader) Prompt(string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *streamReader) Close() error { return nil }

func runRepl(stdin io.Reader, stdout, stderr io.Writer, session *driver.Session, renderer *driver.Renderer, cfg driver.Config, log *slog.Logger) int {
	reader, history := openReader(stdin, cfg.REPL.HistoryFile, log)
	defer reader.Close()
	if history != nil {
		defer history()
	}

	for {
		src, ok := readEntry(reader, cfg.REPL.Prompt, cfg.REPL.ContinuationPrompt)
		if !ok {
			return diag.ExitOK
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit", ":q":
				return diag.ExitOK
			default:
				fmt.Fprintln(stderr, "unknown command. Type :quit to exit.")
			}
			continue
		}
		if state, ok := reader.(*liner.State); ok {
			state.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}

		res := session.Run(src)
		renderer.RenderAll(res.Diagnostics, src)
		if res.Echo {
			fmt.Fprintln(stdout, runtime.Stringify(res.Value))
		}
	}
}

// openReader uses liner on a terminal and a plain line scanner otherwise.
// The returned function saves the history, if any was loaded.
func openReader(stdin io.Reader, historyFile string, log *slog.Logger) (lineReader, func()) {
	file, ok := stdin.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return &streamReader{sc: bufio.NewScanner(stdin)}, nil
	}

	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if historyFile == "" {
		return state, nil
	}
	if f, err := os.Open(historyFile); err == nil {
		if _, err := state.ReadHistory(f); err != nil {
			log.Debug("read history", "path", historyFile, "error", err)
		}
		_ = f.Close()
	}
	return state, func() {
		f, err := os.Create(historyFile)
		if err != nil {
			log.Debug("write history", "path", historyFile, "error", err)
			return
		}
		defer f.Close()
		if _, err := state.WriteHistory(f); err != nil {
			log.Debug("write history", "path", historyFile, "error", err)
		}
	}
}

// readEntry collects lines until they form a complete program or the input
// ends. It reports false once input is exhausted with nothing pending.
func readEntry(reader lineReader, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := reader.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return b.String(), b.Len() > 0
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

func incomplete(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	tokens, diags := scanner.New(src).ScanTokens()
	_, parseDiags := parser.New(tokens).Parse()
	return parser.Incomplete(append(diags, parseDiags...))
}
