package token

import (
	"strings"

	"shard/internal/source"
)

// Token is a single source token with its location, trivia, and decoded
// constant value (numeric, character, and string literals only).
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Value    any
	Leading  []Trivia
	Trailing []Trivia
}

// Position returns the byte offset of the token's text start.
func (t Token) Position() uint32 { return t.Span.Start }

// Width returns the token text width in bytes.
func (t Token) Width() uint32 { return uint32(len(t.Text)) }

// EndPosition returns the offset just past the token text.
func (t Token) EndPosition() uint32 { return t.Span.Start + t.Width() }

// FullWidth extends Width through the trailing trivia run up to, but not
// including, an end-of-line trivia. Trailing non-newline trivia belong to
// this token; a newline terminates the run.
func (t Token) FullWidth() uint32 {
	w := t.Width()
	for _, tr := range t.Trailing {
		if tr.Kind == TriviaEndOfLine {
			break
		}
		w += tr.Width()
	}
	return w
}

// FullText reproduces the token's full source slice: leading trivia,
// text, and trailing trivia, in order.
func (t Token) FullText() string {
	var sb strings.Builder
	for _, tr := range t.Leading {
		sb.WriteString(tr.FullText())
	}
	sb.WriteString(t.Text)
	for _, tr := range t.Trailing {
		sb.WriteString(tr.FullText())
	}
	return sb.String()
}

// Synthesized reports whether the parser fabricated this token during
// error recovery. Synthesized tokens carry no text and zero width.
func (t Token) Synthesized() bool {
	return t.Text == "" && t.Kind != EOF
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLiteral reports whether the token is a literal constant.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// WithKind returns a copy reclassified to kind, preserving text and trivia.
// The parser uses this for contextual keywords (get, set, add, remove, ...).
func (t Token) WithKind(k Kind) Token {
	t.Kind = k
	return t
}

// AttributeTargets is the closed set of attribute target specifiers. The
// keyword-spelled targets ('event', 'return') arrive as keyword tokens;
// the rest arrive as identifiers.
var AttributeTargets = map[string]bool{
	"assembly": true,
	"field":    true,
	"event":    true,
	"method":   true,
	"module":   true,
	"param":    true,
	"property": true,
	"return":   true,
	"type":     true,
}
