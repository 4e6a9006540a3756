package lexer

import (
	"shard/internal/source"
	"shard/internal/token"
)

// Lexer turns a source file into a token stream. Every byte of the input
// ends up either in a token's text or in trivia attached to a token, so
// the stream reproduces the file exactly.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize scans the whole file and returns the token stream. The final
// token is always EOF, carrying any trivia that follows the last real token.
func (lx *Lexer) Tokenize() *token.Stream {
	var tokens []token.Token
	for {
		tok := lx.next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return token.NewStream(lx.file.ID, tokens)
}

// next produces one token: leading trivia, the token text, then trailing
// trivia up to and including a single end-of-line.
func (lx *Lexer) next() token.Token {
	leading := lx.scanLeadingTrivia()

	if lx.cursor.EOF() {
		off := lx.cursor.Off
		return token.Token{
			Kind:    token.EOF,
			Span:    source.Span{File: lx.file.ID, Start: off, End: off},
			Leading: leading,
		}
	}

	tok := lx.scanToken()
	tok.Leading = leading
	tok.Trailing = lx.scanTrailingTrivia()
	return tok
}

// scanToken dispatches on the current byte.
func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '@' && lx.cursor.PeekAt(1) == '"':
		return lx.scanVerbatimString()

	case ch == '\'':
		return lx.scanChar()

	case ch == '#':
		return lx.scanDirective()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// scanDirective consumes a whole '#...' line as one token. Directives are
// recognized but never interpreted here.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Directive, Span: sp, Text: lx.file.Slice(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return lx.file.Slice(sp)
}
