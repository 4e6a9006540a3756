package lexer

import (
	"unicode/utf16"

	"shard/internal/diag"
	"shard/internal/source"
	"shard/internal/token"
)

// scanString scans a regular "..." literal with escape processing. A raw
// newline terminates the literal with "Newline in constant"; EOF without a
// closing quote reports at the opening position.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var units []uint16
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: string(utf16.Decode(units))}
		}
		if b == '\n' || (b == '\r' && lx.cursor.PeekAt(1) == '\n') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexNewlineInConstant, sp, "Newline in constant")
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: string(utf16.Decode(units))}
		}
		if b == '\\' {
			units = lx.scanEscape(units)
			continue
		}
		r, _ := lx.peekRune()
		units = utf16.AppendRune(units, r)
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, openQuote(sp), "Unterminated string literal")
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: string(utf16.Decode(units))}
}

// scanVerbatimString scans @"..." where backslashes are literal and ""
// is an embedded quote. Newlines are allowed.
func (lx *Lexer) scanVerbatimString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	lx.cursor.Bump() // opening '"'

	var units []uint16
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			if lx.cursor.PeekAt(1) == '"' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				units = utf16.AppendRune(units, '"')
				continue
			}
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: string(utf16.Decode(units))}
		}
		r, _ := lx.peekRune()
		units = utf16.AppendRune(units, r)
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, openQuote(sp), "Unterminated string literal")
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: string(utf16.Decode(units))}
}

// scanChar scans a 'x' literal. An empty body reports once and decodes to
// the zero character; extra characters report once and are consumed up to
// the closing quote or end of line.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexEmptyCharLiteral, sp, "Empty character literal")
		return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Value: rune(0)}
	}

	value := rune(0)
	count := 0
	reported := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Value: value}
		}
		if b == '\n' || (b == '\r' && lx.cursor.PeekAt(1) == '\n') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexNewlineInConstant, sp, "Newline in constant")
			return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Value: value}
		}

		var units []uint16
		if b == '\\' {
			units = lx.scanEscape(nil)
		} else {
			r, _ := lx.peekRune()
			units = utf16.AppendRune(nil, r)
			lx.bumpRune()
		}
		count += len(units)
		if count == len(units) && len(units) > 0 {
			decoded := utf16.Decode(units)
			if len(decoded) > 0 {
				value = decoded[0]
			}
		}
		if count > 1 && !reported {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexTooManyCharsInCharLit, sp, "Too many characters in character literal")
			reported = true
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, openQuote(sp), "Unterminated string literal")
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Value: value}
}

// scanEscape decodes one backslash escape and appends its UTF-16 units.
// Unrecognized escapes report and decode to the escaped character itself.
func (lx *Lexer) scanEscape(units []uint16) []uint16 {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(escStart)
		lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
		return utf16.AppendRune(units, '\\')
	}

	b := lx.cursor.Bump()
	switch b {
	case '"':
		return utf16.AppendRune(units, '"')
	case '\\':
		return utf16.AppendRune(units, '\\')
	case '\'':
		return utf16.AppendRune(units, '\'')
	case '0':
		return utf16.AppendRune(units, 0)
	case 'a':
		return utf16.AppendRune(units, '\a')
	case 'b':
		return utf16.AppendRune(units, '\b')
	case 'f':
		return utf16.AppendRune(units, '\f')
	case 'n':
		return utf16.AppendRune(units, '\n')
	case 'r':
		return utf16.AppendRune(units, '\r')
	case 't':
		return utf16.AppendRune(units, '\t')
	case 'v':
		return utf16.AppendRune(units, '\v')

	case 'x':
		// 1-4 hex digits
		var value uint32
		digits := 0
		for digits < 4 && isHex(lx.cursor.Peek()) {
			value = value<<4 | hexValue(lx.cursor.Bump())
			digits++
		}
		if digits == 0 {
			sp := lx.cursor.SpanFrom(escStart)
			lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
			return utf16.AppendRune(units, 'x')
		}
		return append(units, uint16(value))

	case 'u':
		// exactly 4 hex digits; the raw unit is kept so surrogate pairs can
		// combine across two escapes
		var value uint32
		for i := 0; i < 4; i++ {
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
				return utf16.AppendRune(units, 'u')
			}
			value = value<<4 | hexValue(lx.cursor.Bump())
		}
		return append(units, uint16(value))

	case 'U':
		// exactly 8 hex digits, valid when <= 0x10FFFF
		var value uint32
		for i := 0; i < 8; i++ {
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
				return utf16.AppendRune(units, 'U')
			}
			value = value<<4 | hexValue(lx.cursor.Bump())
		}
		if value > 0x10FFFF {
			sp := lx.cursor.SpanFrom(escStart)
			lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
			return utf16.AppendRune(units, 'U')
		}
		return utf16.AppendRune(units, rune(value))

	default:
		sp := lx.cursor.SpanFrom(escStart)
		lx.errLex(diag.LexUnrecognizedEscape, sp, "Unrecognized escape sequence")
		return utf16.AppendRune(units, rune(b))
	}
}

// openQuote narrows a span to its opening quote character.
func openQuote(sp source.Span) source.Span {
	out := sp.Collapse(true)
	out.End = out.Start + 1
	return out
}
