package parser

import (
	"shard/internal/diag"
	"shard/internal/source"
	"shard/internal/syntax"
	"shard/internal/token"
)

// take consumes the current token and flushes the skipped-token buffer
// into its leading trivia.
func (p *Parser) take() token.Token {
	tok := p.stream.Advance()
	if len(p.skipped) > 0 {
		tok.Leading = append(p.skipped, tok.Leading...)
		p.skipped = nil
	}
	return tok
}

// expect consumes a token of kind k, or synthesizes one. On mismatch it
// reports "<token> expected" after the previous token and turns recovery on.
func (p *Parser) expect(k token.Kind) token.Token {
	return p.expectText(k, token.KindText(k))
}

// expectText is expect with an explicit diagnostic spelling. While the
// parser is already recovering from a failed expect, follow-up failures
// stay silent so one stray token does not cascade into an error per
// production.
func (p *Parser) expectText(k token.Kind, text string) token.Token {
	if p.at(k) {
		p.recovering = false
		return p.take()
	}
	if text != "" && !p.recovering {
		p.error(diag.SynTokenExpected, p.previousEndSpan(), text+" expected")
	}
	p.recovering = true
	return p.synthesize(k)
}

// expectOptional consumes a token of kind k when present; never reports.
func (p *Parser) expectOptional(k token.Kind) syntax.Opt[token.Token] {
	if p.at(k) {
		return syntax.Some(p.take())
	}
	return syntax.None[token.Token]()
}

// expectIf expects k (with a diagnostic) when cond holds and treats it
// as optional otherwise.
func (p *Parser) expectIf(k token.Kind, cond bool, text string) syntax.Opt[token.Token] {
	if cond {
		return syntax.Some(p.expectText(k, text))
	}
	return p.expectOptional(k)
}

// expectIdentifier consumes an identifier, reporting "Identifier
// expected" at the current token's text end on mismatch.
func (p *Parser) expectIdentifier() token.Token {
	if p.at(token.Ident) {
		p.recovering = false
		return p.take()
	}
	if !p.recovering {
		cur := p.stream.Current()
		end := cur.EndPosition()
		p.error(diag.SynIdentifierExpected,
			source.Span{File: cur.Span.File, Start: end, End: end}, "Identifier expected")
	}
	p.recovering = true
	return p.synthesize(token.Ident)
}

// synthesize fabricates an empty-text token of kind k at the previous
// token's end, without consuming input. The accumulated skipped-token
// buffer moves onto the synthesized token so no source text is lost.
func (p *Parser) synthesize(k token.Kind) token.Token {
	prev := p.stream.Previous()
	end := prev.EndPosition()
	tok := token.Token{
		Kind: k,
		Span: source.Span{File: prev.Span.File, Start: end, End: end},
	}
	if len(p.skipped) > 0 {
		tok.Leading = p.skipped
		p.skipped = nil
	}
	return tok
}

// synchronize advances past tokens no enclosing context can continue
// with, wrapping each one as skipped-token trivia for the next consumed
// token. Recovery ends when a valid continuation (or EOF) is reached.
func (p *Parser) synchronize(extra ...token.Kind) {
	for !p.at(token.EOF) {
		k := p.stream.Current().Kind
		if p.isTokenValidInPrecedingContext(k) {
			break
		}
		stop := false
		for _, e := range extra {
			if k == e {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
	}
	p.recovering = false
}

// skipDirectives moves preprocessor lines into the skipped-token buffer.
// Directives are recognized by the lexer but never interpreted here; they
// surface as trivia on the next real token and stay in the round trip.
func (p *Parser) skipDirectives() {
	for p.at(token.Directive) {
		p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
	}
}

// error reports an error diagnostic.
func (p *Parser) error(code diag.Code, sp source.Span, msg string) {
	p.bag.Error(code, sp, msg)
}

// currentSpan is the current token's span, collapsed to the previous
// token's end when the current token is EOF.
func (p *Parser) currentSpan() source.Span {
	cur := p.stream.Current()
	if cur.Kind == token.EOF {
		return p.previousEndSpan()
	}
	return cur.Span
}

// previousEndSpan is the zero-width span just past the previous token.
func (p *Parser) previousEndSpan() source.Span {
	prev := p.stream.Previous()
	end := prev.EndPosition()
	return source.Span{File: prev.Span.File, Start: end, End: end}
}

// speculation bundles the checkpoints every speculative parse must roll
// back together: the token cursor first, then the diagnostic log. The
// skipped-token buffer and recovery flag are snapshotted too, since a
// discarded attempt may have flushed the buffer into tokens that never
// reach the tree.
type speculation struct {
	rp         token.RestorePoint
	sup        diag.Suppression
	skipped    []token.Trivia
	recovering bool
}

func (p *Parser) speculate() speculation {
	return speculation{
		rp:         p.stream.CreateRestorePoint(),
		sup:        p.bag.Suppress(),
		skipped:    p.skipped,
		recovering: p.recovering,
	}
}

// rollback restores the cursor and truncates provisional diagnostics.
func (p *Parser) rollback(s speculation) {
	p.stream.Restore(s.rp)
	s.sup.Restore()
	p.skipped = s.skipped
	p.recovering = s.recovering
}

// commit keeps the speculative parse: provisional diagnostics stand.
func (p *Parser) commit(speculation) {}

// validateModifiers rejects duplicates and modifiers the declaration
// kind does not permit in the current context. Reported inline; recovery
// state is untouched.
func (p *Parser) validateModifiers(kind syntax.DeclarationKind, env syntax.ModifierEnv, mods []token.Token) {
	seen := make(map[token.Kind]bool, len(mods))
	for _, m := range mods {
		if seen[m.Kind] {
			p.error(diag.SynDuplicateModifier, m.Span, "Duplicate '"+m.Text+"' modifier")
			continue
		}
		seen[m.Kind] = true
		if !syntax.IsModifierValid(kind, env, m.Kind) {
			p.error(diag.SynInvalidModifier, m.Span,
				"The modifier '"+m.Text+"' is not valid for this item")
		}
	}
}

// modifierEnv derives the validation environment from the enclosing
// declaration stack.
func (p *Parser) modifierEnv() syntax.ModifierEnv {
	env := syntax.ModifierEnv{}
	if len(p.enclosing) == 0 {
		env.InNamespace = true
	} else if p.enclosing[len(p.enclosing)-1] == syntax.DeclInterface {
		env.InInterface = true
	}
	return env
}

// parseModifiers greedily collects modifier tokens.
func (p *Parser) parseModifiers() []token.Token {
	var mods []token.Token
	for p.stream.Current().Kind.IsModifier() {
		mods = append(mods, p.take())
	}
	return mods
}
