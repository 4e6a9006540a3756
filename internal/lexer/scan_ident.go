package lexer

import (
	"shard/internal/token"
)

// scanIdentOrKeyword consumes letter|'_' followed by letter|digit|'_',
// then matches the text against the closed keyword set.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		// non-letter Unicode byte: a one-rune Unknown token
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Unknown, Span: sp, Text: lx.text(sp)}
	}
	lx.bumpRune()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}

	tok := token.Token{Kind: kind, Span: sp, Text: text}
	switch kind {
	case token.KwTrue:
		tok.Value = true
	case token.KwFalse:
		tok.Value = false
	}
	return tok
}
