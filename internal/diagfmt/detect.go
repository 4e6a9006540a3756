package diagfmt

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DetectColor reports whether w is an interactive terminal, so callers
// can default PrettyOpts.Color sensibly. NO_COLOR always wins.
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
