package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/lpahlavi/jlox/pkg/diag"
)

// Renderer writes diagnostics as "line:column: stage: message" followed by a
// caret snippet of the offending source line.
type Renderer struct {
	out      *termenv.Output
	snippets bool
}

// NewRenderer builds a renderer for w. color is one of ColorAuto,
// ColorAlways or ColorNever; auto enables color only on a terminal.
func NewRenderer(w io.Writer, color string) *Renderer {
	var opts []termenv.OutputOption
	switch color {
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...), snippets: true}
}

// WithoutSnippets disables the source excerpt under each header.
func (r *Renderer) WithoutSnippets() *Renderer {
	r.snippets = false
	return r
}

// RenderAll writes every diagnostic in order.
func (r *Renderer) RenderAll(diags diag.List, src string) {
	for _, d := range diags {
		r.Render(d, src)
	}
}

// Render writes one diagnostic. src may be empty.
func (r *Renderer) Render(d diag.Diagnostic, src string) {
	loc := r.out.String(location(d.Location)).Bold()
	stage := r.out.String(d.Stage.String()).Foreground(r.stageColor(d.Stage)).Bold()
	fmt.Fprintf(r.out, "%s: %s: %s\n", loc, stage, detail(d))
	if !r.snippets {
		return
	}
	if excerpt := snippet(src, d.Location); excerpt != "" {
		fmt.Fprint(r.out, r.out.String(excerpt).Faint())
	}
}

func (r *Renderer) stageColor(stage diag.Stage) termenv.Color {
	if stage == diag.StageRuntime {
		return r.out.Color("5")
	}
	return r.out.Color("1")
}

// Format renders d without color or snippet.
func Format(d diag.Diagnostic) string {
	return fmt.Sprintf("%s: %s: %s", location(d.Location), d.Stage, detail(d))
}

func location(loc diag.Location) string {
	if loc.Column > 0 {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
	}
	return fmt.Sprintf("%d", loc.Line)
}

func detail(d diag.Diagnostic) string {
	switch {
	case d.Location.AtEnd:
		return "at end: " + d.Message
	case d.Location.Lexeme != "":
		return fmt.Sprintf("at '%s': %s", firstLine(d.Location.Lexeme), d.Message)
	default:
		return d.Message
	}
}

// snippet returns the source line of loc with a caret run under its lexeme.
func snippet(src string, loc diag.Location) string {
	if src == "" || loc.Line < 1 || loc.Column < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if loc.Line > len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[loc.Line-1], "\r")
	runes := []rune(text)
	col := min(loc.Column-1, len(runes))

	var pad strings.Builder
	for _, ch := range runes[:col] {
		if ch == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(ch)))
	}
	width := 1
	if !loc.AtEnd {
		width = max(1, runewidth.StringWidth(firstLine(loc.Lexeme)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", loc.Line, text)
	fmt.Fprintf(&b, "     | %s^%s\n", pad.String(), strings.Repeat("~", width-1))
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
