package token

import "shard/internal/source"

// TriviaKind classifies non-semantic lexemes attached to tokens.
type TriviaKind uint8

const (
	// TriviaWhitespace covers spaces, tabs, and lone carriage returns.
	TriviaWhitespace TriviaKind = iota
	// TriviaEndOfLine is a single line terminator ('\n' or "\r\n").
	TriviaEndOfLine
	// TriviaLineComment is a '//' comment up to the end of line.
	TriviaLineComment
	// TriviaBlockComment is a '/* */' comment, possibly unterminated at EOF.
	TriviaBlockComment
	// TriviaSkippedToken wraps a whole token the parser discarded during
	// error recovery, preserving that token's own trivia.
	TriviaSkippedToken
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "whitespace"
	case TriviaEndOfLine:
		return "end-of-line"
	case TriviaLineComment:
		return "line-comment"
	case TriviaBlockComment:
		return "block-comment"
	case TriviaSkippedToken:
		return "skipped-token"
	default:
		return "invalid"
	}
}

// Trivia is one non-semantic lexeme. Skipped holds the embedded token
// only when Kind == TriviaSkippedToken; Text is empty in that case.
type Trivia struct {
	Kind    TriviaKind
	Span    source.Span
	Text    string
	Skipped *Token
}

// Width returns the trivia width in bytes, including an embedded
// skipped token's own trivia.
func (tr Trivia) Width() uint32 {
	if tr.Kind == TriviaSkippedToken && tr.Skipped != nil {
		return uint32(len(tr.Skipped.FullText()))
	}
	return tr.Span.Len()
}

// FullText reproduces the trivia's source text.
func (tr Trivia) FullText() string {
	if tr.Kind == TriviaSkippedToken && tr.Skipped != nil {
		return tr.Skipped.FullText()
	}
	return tr.Text
}

// SkipToken wraps a discarded token as recovery trivia.
func SkipToken(t Token) Trivia {
	clone := t
	return Trivia{
		Kind:    TriviaSkippedToken,
		Span:    t.Span,
		Skipped: &clone,
	}
}
