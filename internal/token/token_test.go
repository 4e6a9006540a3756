package token

import (
	"testing"

	"shard/internal/source"
)

func mk(kind Kind, start uint32, text string) Token {
	return Token{
		Kind: kind,
		Span: source.Span{Start: start, End: start + uint32(len(text))},
		Text: text,
	}
}

func TestFullWidthStopsAtNewline(t *testing.T) {
	tok := mk(Ident, 0, "x")
	tok.Trailing = []Trivia{
		{Kind: TriviaWhitespace, Span: source.Span{Start: 1, End: 3}, Text: "  "},
		{Kind: TriviaLineComment, Span: source.Span{Start: 3, End: 8}, Text: "// c!"},
		{Kind: TriviaEndOfLine, Span: source.Span{Start: 8, End: 9}, Text: "\n"},
	}
	if got := tok.Width(); got != 1 {
		t.Fatalf("Width = %d", got)
	}
	if got := tok.FullWidth(); got != 8 {
		t.Fatalf("FullWidth = %d, want 8 (newline excluded)", got)
	}
	if got := tok.FullText(); got != "x  // c!\n" {
		t.Fatalf("FullText = %q", got)
	}
}

func TestSkippedTokenTrivia(t *testing.T) {
	bad := mk(KwClass, 10, "class")
	bad.Leading = []Trivia{{Kind: TriviaWhitespace, Span: source.Span{Start: 9, End: 10}, Text: " "}}
	tr := SkipToken(bad)
	if tr.Kind != TriviaSkippedToken || tr.Skipped == nil {
		t.Fatal("SkipToken lost the embedded token")
	}
	if tr.FullText() != " class" {
		t.Fatalf("FullText = %q", tr.FullText())
	}
}

func TestSynthesized(t *testing.T) {
	if !(Token{Kind: Semicolon}).Synthesized() {
		t.Fatal("empty-text token should report synthesized")
	}
	if (Token{Kind: EOF}).Synthesized() {
		t.Fatal("EOF is never synthesized")
	}
	if mk(Semicolon, 0, ";").Synthesized() {
		t.Fatal("real token misreported")
	}
}

func TestStreamCursorAndRestore(t *testing.T) {
	toks := []Token{
		mk(KwClass, 0, "class"),
		mk(Ident, 6, "C"),
		mk(LBrace, 8, "{"),
		mk(RBrace, 9, "}"),
		{Kind: EOF, Span: source.Span{Start: 10, End: 10}},
	}
	s := NewStream(0, toks)

	if s.Current().Kind != KwClass || s.Lookahead().Kind != Ident {
		t.Fatal("cursor start position wrong")
	}
	rp := s.CreateRestorePoint()
	s.Advance()
	s.Advance()
	if s.Current().Kind != LBrace {
		t.Fatalf("Current = %v", s.Current().Kind)
	}
	if s.Previous().Kind != Ident {
		t.Fatalf("Previous = %v", s.Previous().Kind)
	}
	s.Restore(rp)
	if s.Current().Kind != KwClass {
		t.Fatal("Restore did not rewind")
	}
}

func TestStreamSyntheticEOF(t *testing.T) {
	toks := []Token{mk(Ident, 0, "abc")}
	s := NewStream(0, toks)
	s.Advance()
	eof := s.Current()
	if eof.Kind != EOF {
		t.Fatalf("Current past end = %v", eof.Kind)
	}
	if eof.Span.Start != 4 {
		t.Fatalf("synthetic EOF at %d, want last.end+1 = 4", eof.Span.Start)
	}
	// advancing past EOF keeps returning it
	s.Advance()
	if s.Current().Kind != EOF {
		t.Fatal("stream must stay at EOF")
	}
}
