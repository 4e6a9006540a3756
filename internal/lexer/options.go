package lexer

import (
	"shard/internal/diag"
	"shard/internal/source"
)

// Options configures a single lexer run.
type Options struct {
	// Reporter receives lexical diagnostics; nil drops them (lexing continues).
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
