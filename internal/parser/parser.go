package parser

import (
	"shard/internal/diag"
	"shard/internal/syntax"
	"shard/internal/token"
)

// Parser is the per-file recursive-descent state: the token cursor, the
// context stack, the recovery flag, and the skipped-token buffer. One
// instance serves exactly one Parse call. Error limits are the bag's
// concern; the parser reports until the bag stops accepting.
type Parser struct {
	stream *token.Stream
	bag    *diag.Bag

	ctx        []Context
	recovering bool
	skipped    []token.Trivia

	// enclosing declaration kinds, innermost last; empty means the
	// member dispatch is at namespace level
	enclosing []syntax.DeclarationKind
}

// New creates a parser over a token stream, reporting into bag.
func New(bag *diag.Bag, stream *token.Stream) *Parser {
	return &Parser{stream: stream, bag: bag}
}

// Parse consumes the whole stream and returns the compilation unit. The
// parser never fails: missing pieces are synthesized and stray tokens
// become skipped-token trivia, so the tree always covers every byte.
func (p *Parser) Parse() *syntax.CompilationUnit {
	pop := p.pushContext(CtxNamespace)
	defer pop()

	unit := &syntax.CompilationUnit{}
	unit.Usings = p.parseUsings()
	unit.Attributes = p.parseGlobalAttributes()

	for !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.EOF) {
			break
		}
		before := p.stream.CreateRestorePoint()
		member, ok := p.parseNamespaceMember()
		if ok {
			unit.Declarations = append(unit.Declarations, member)
		} else {
			p.error(diag.SynNamespaceExpected, p.currentSpan(),
				"Type or namespace definition, or end-of-file expected")
			p.synchronize()
		}
		if before == p.stream.CreateRestorePoint() && !p.at(token.EOF) {
			// stuck on a token some context accepts but nothing consumed;
			// drop it so the loop always advances
			p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
		}
	}

	unit.EOF = p.expect(token.EOF)
	return unit
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.stream.Current().Kind == k
}

// atAny reports whether the current token is one of kinds.
func (p *Parser) atAny(kinds ...token.Kind) bool {
	cur := p.stream.Current().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}
