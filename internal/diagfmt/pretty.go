package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"shard/internal/diag"
	"shard/internal/source"
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	// Color enables ANSI severity coloring.
	Color bool
	// TabWidth is the display width of a tab in the context line; 0
	// falls back to 4.
	TabWidth int
	// ShowNotes renders secondary notes under their diagnostic.
	ShowNotes bool
}

// Pretty renders diagnostics in a human-readable form, one entry per
// diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY>: <message>
//	  <source line>
//	  <caret and underline>
//
// The caret line is aligned with display widths, so tabs and wide runes
// in the source do not skew the underline. Call bag.Sort() first for a
// deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				start, _ := fs.Resolve(note.Span)
				file := fs.Get(note.Span.File)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, start.Line, start.Col, note.Msg)
			}
		}
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", file.Path, start.Line, start.Col, sev, d.Message)

	line := file.GetLine(start.Line)
	if line == "" && start.Col == 1 {
		return
	}

	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}
	expanded := expandTabs(line, tabWidth)
	fmt.Fprintf(w, "  %s\n", expanded)

	// columns are 1-based byte-ish offsets into the line; convert the
	// prefix to display width so the caret lands under the lexeme
	prefix := sliceLine(line, start.Col-1)
	pad := displayWidth(expandTabs(prefix, tabWidth))

	underline := 1
	if d.Primary.File == file.ID && end.Line == start.Line && end.Col > start.Col {
		marked := sliceLine(line, end.Col-1)
		underline = displayWidth(expandTabs(marked, tabWidth)) - pad
		if underline < 1 {
			underline = 1
		}
	}

	marker := "^" + strings.Repeat("~", underline-1)
	if opts.Color {
		marker = severityColor(d.Severity).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	if sev >= diag.SevError {
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.FgYellow, color.Bold)
}

// sliceLine cuts line at a column measured in bytes, clamped.
func sliceLine(line string, col uint32) string {
	if int(col) > len(line) {
		return line
	}
	return line[:col]
}

func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
