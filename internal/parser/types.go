package parser

import (
	"shard/internal/diag"
	"shard/internal/syntax"
	"shard/internal/token"
)

// parseTypeName parses a dotted name: Ident (. Ident)*, left-nested.
// Used for type references, using directives, and namespace names.
func (p *Parser) parseTypeName() syntax.TypeNode {
	var t syntax.TypeNode = &syntax.SimpleType{Identifier: p.expectIdentifier()}
	for p.at(token.Dot) && p.stream.Lookahead().Kind == token.Ident {
		dot := p.take()
		t = &syntax.QualifiedType{
			Left:  t,
			Dot:   dot,
			Right: &syntax.SimpleType{Identifier: p.take()},
		}
	}
	return t
}

// parseType parses a full type: a predefined keyword or qualified name,
// followed by pointer stars and array rank specifiers. A missing type
// reports "Type expected" and yields a synthesized name.
func (p *Parser) parseType() syntax.TypeNode {
	if t, ok := p.parseTypeOpt(); ok {
		return t
	}
	if !p.recovering {
		p.error(diag.SynTypeExpected, p.previousEndSpan(), "Type expected")
	}
	p.recovering = true
	return &syntax.SimpleType{Identifier: p.synthesize(token.Ident)}
}

// parseTypeOpt parses a type if one starts here. It reports nothing on
// its own; size expressions inside rank specifiers may, so speculative
// callers wrap it in a suppression.
func (p *Parser) parseTypeOpt() (syntax.TypeNode, bool) {
	var core syntax.TypeNode
	switch {
	case p.stream.Current().Kind.IsPredefinedType():
		core = &syntax.PredefinedType{Keyword: p.take()}
	case p.at(token.Ident):
		core = p.parseTypeName()
	default:
		return nil, false
	}
	return p.parseTypeSuffix(core), true
}

// parseTypeSuffix wraps core with pointer and array suffixes.
func (p *Parser) parseTypeSuffix(core syntax.TypeNode) syntax.TypeNode {
	for {
		switch {
		case p.at(token.Star):
			core = &syntax.PointerType{ElementType: core, Star: p.take()}

		case p.at(token.LBracket):
			var ranks []*syntax.ArrayRankSpecifier
			valid := true
			for p.at(token.LBracket) {
				rank := p.parseArrayRank()
				for _, size := range rank.Sizes.Items {
					if size.Kind() != syntax.KindEmptyExpression {
						valid = false
					}
				}
				ranks = append(ranks, rank)
			}
			core = &syntax.ArrayType{ElementType: core, Ranks: ranks, IsValidType: valid}

		default:
			return core
		}
	}
}

// parseArrayRank parses one [ ... ] specifier: empty, comma-only
// placeholders for multi-dimensional shapes, or size expressions.
func (p *Parser) parseArrayRank() *syntax.ArrayRankSpecifier {
	open := p.take()
	rank := &syntax.ArrayRankSpecifier{OpenBracket: open}

	if !p.at(token.RBracket) {
		for {
			if p.at(token.Comma) || p.at(token.RBracket) {
				rank.Sizes.Items = append(rank.Sizes.Items, &syntax.EmptyExpression{})
			} else {
				rank.Sizes.Items = append(rank.Sizes.Items, p.parseExpression())
			}
			if !p.at(token.Comma) {
				break
			}
			rank.Sizes.Separators = append(rank.Sizes.Separators, p.take())
		}
	}

	rank.CloseBracket = p.expect(token.RBracket)
	return rank
}

// tryParseType speculatively parses a type, consuming input only on
// success. Provisional diagnostics are rolled back with the cursor.
func (p *Parser) tryParseType() (syntax.TypeNode, bool) {
	s := p.speculate()
	t, ok := p.parseTypeOpt()
	if !ok {
		p.rollback(s)
		return nil, false
	}
	p.commit(s)
	return t, true
}

// startsCastOperand reports whether k may start the operand of a cast,
// which is how '(T)x' is told apart from a parenthesized expression:
// a unary or primary starter follows the closing paren.
func startsCastOperand(k token.Kind) bool {
	switch k {
	case token.Tilde, token.Bang, token.Ident, token.NumberLit,
		token.StringLit, token.CharLit, token.LParen:
		return true
	case token.KwIs, token.KwAs:
		return false
	}
	return k.IsKeyword()
}
