package parser

import (
	"shard/internal/diag"
	"shard/internal/syntax"
	"shard/internal/token"
)

// parseUsings collects leading using directives. Preprocessor lines
// between them ride along as skipped trivia.
func (p *Parser) parseUsings() []*syntax.UsingDirective {
	var out []*syntax.UsingDirective
	p.skipDirectives()
	for p.at(token.KwUsing) {
		out = append(out, p.parseUsingDirective())
		p.skipDirectives()
	}
	return out
}

// parseUsingDirective is using [alias =] name ;
func (p *Parser) parseUsingDirective() *syntax.UsingDirective {
	d := &syntax.UsingDirective{UsingKeyword: p.take()}

	if p.at(token.Ident) && p.stream.Lookahead().Kind == token.Assign {
		d.Alias = syntax.Some(p.take())
		d.Equals = syntax.Some(p.take())
	}
	d.Name = p.parseTypeName()
	d.Semicolon = p.expect(token.Semicolon)
	return d
}

// parseGlobalAttributes collects attribute sections with an explicit
// target specifier ([assembly: ...]); sections without a target belong to
// the declaration that follows them.
func (p *Parser) parseGlobalAttributes() []*syntax.AttributeSection {
	var out []*syntax.AttributeSection
	for p.at(token.LBracket) && p.attributeSectionHasTarget() {
		out = append(out, p.parseAttributeSection())
	}
	return out
}

// attributeSectionHasTarget peeks for '[' target ':'.
func (p *Parser) attributeSectionHasTarget() bool {
	next := p.stream.Lookahead()
	if next.Kind != token.Ident && next.Kind != token.KwEvent && next.Kind != token.KwReturn {
		return false
	}
	return p.stream.Peek(2).Kind == token.Colon
}

// parseAttributeSections collects the sections preceding a declaration.
func (p *Parser) parseAttributeSections() []*syntax.AttributeSection {
	var out []*syntax.AttributeSection
	for p.at(token.LBracket) {
		out = append(out, p.parseAttributeSection())
	}
	return out
}

// parseAttributeSection is [ [target:] attribute, ... ].
func (p *Parser) parseAttributeSection() *syntax.AttributeSection {
	pop := p.pushContext(CtxAttributeList)
	defer pop()

	s := &syntax.AttributeSection{OpenBracket: p.take()}

	if p.attributeTargetAhead() {
		target := p.take()
		if !token.AttributeTargets[target.Text] {
			p.error(diag.SynInvalidAttributeTarget, target.Span,
				"'"+target.Text+"' is not a valid attribute target")
		}
		s.Target = syntax.Some(target)
		s.Colon = syntax.Some(p.take())
	}

	for {
		attr := &syntax.Attribute{Name: p.parseTypeName()}
		if p.at(token.LParen) {
			attr.Arguments = p.parseAttributeArguments()
		}
		s.Attributes.Items = append(s.Attributes.Items, attr)
		if !p.at(token.Comma) {
			break
		}
		s.Attributes.Separators = append(s.Attributes.Separators, p.take())
	}

	s.CloseBracket = p.expect(token.RBracket)
	return s
}

// attributeTargetAhead reports whether the section opens with target ':'.
// The target is an identifier or one of the keyword-spelled targets.
func (p *Parser) attributeTargetAhead() bool {
	cur := p.stream.Current()
	if cur.Kind != token.Ident && cur.Kind != token.KwEvent && cur.Kind != token.KwReturn {
		return false
	}
	return p.stream.Lookahead().Kind == token.Colon
}

// parseAttributeArguments is ( expression, ... ).
func (p *Parser) parseAttributeArguments() *syntax.AttributeArgumentList {
	l := &syntax.AttributeArgumentList{OpenParen: p.take()}
	if !p.at(token.RParen) && !p.at(token.EOF) {
		for {
			l.Arguments.Items = append(l.Arguments.Items, p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
			l.Arguments.Separators = append(l.Arguments.Separators, p.take())
		}
	}
	l.CloseParen = p.expect(token.RParen)
	return l
}

// parseNamespaceMember dispatches one namespace-level declaration. ok is
// false when nothing recognizable starts here.
func (p *Parser) parseNamespaceMember() (syntax.Member, bool) {
	if p.at(token.KwNamespace) {
		return p.parseNamespaceDeclaration(), true
	}

	attrs := p.parseAttributeSections()
	mods := p.parseModifiers()

	switch p.stream.Current().Kind {
	case token.KwClass, token.KwStruct, token.KwInterface:
		return p.parseTypeDeclaration(attrs, mods), true
	case token.KwEnum:
		return p.parseEnumDeclaration(attrs, mods), true
	case token.KwDelegate:
		return p.parseDelegateDeclaration(attrs, mods), true
	}

	if len(attrs) > 0 || len(mods) > 0 {
		// something started but no declaration followed
		p.error(diag.SynInvalidDirective, p.currentSpan(),
			"The compilation unit or namespace contains an invalid declaration or directive")
		return &syntax.IncompleteMember{Attributes: attrs, Modifiers: mods}, true
	}
	return nil, false
}

// parseNamespaceDeclaration is namespace Name { usings declarations } [;]
func (p *Parser) parseNamespaceDeclaration() *syntax.NamespaceDeclaration {
	d := &syntax.NamespaceDeclaration{Keyword: p.take()}
	d.Name = p.parseTypeName()
	d.OpenBrace = p.expect(token.LBrace)
	d.Usings = p.parseUsings()

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.stream.CreateRestorePoint()
		member, ok := p.parseNamespaceMember()
		if ok {
			d.Declarations = append(d.Declarations, member)
		}
		if !ok || before == p.stream.CreateRestorePoint() {
			if !ok {
				p.error(diag.SynNamespaceExpected, p.currentSpan(),
					"Type or namespace definition, or end-of-file expected")
			}
			p.synchronize(token.RBrace)
			if p.at(token.RBrace) {
				break
			}
			if before == p.stream.CreateRestorePoint() {
				// still stuck on a token every context accepts; drop it
				p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
			}
		}
	}

	d.CloseBrace = p.expect(token.RBrace)
	d.Semicolon = p.expectOptional(token.Semicolon)
	return d
}

// parseTypeDeclaration is class|struct|interface Name [: bases] { members } [;]
func (p *Parser) parseTypeDeclaration(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.TypeDeclaration {
	d := &syntax.TypeDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Keyword:    p.take(),
	}
	p.validateModifiers(d.DeclKind(), p.modifierEnv(), mods)

	d.Identifier = p.expectIdentifier()
	d.Bases = p.parseBaseList()
	d.OpenBrace = p.expect(token.LBrace)

	p.enclosing = append(p.enclosing, d.DeclKind())
	pop := p.pushContext(CtxType)
	d.Members = p.parseMemberList()
	pop()
	p.enclosing = p.enclosing[:len(p.enclosing)-1]

	d.CloseBrace = p.expect(token.RBrace)
	d.Semicolon = p.expectOptional(token.Semicolon)
	return d
}

// parseBaseList is : T1, T2, ... or nil when absent.
func (p *Parser) parseBaseList() *syntax.BaseList {
	if !p.at(token.Colon) {
		return nil
	}
	l := &syntax.BaseList{Colon: p.take()}
	for {
		l.Types.Items = append(l.Types.Items, p.parseType())
		if !p.at(token.Comma) {
			break
		}
		l.Types.Separators = append(l.Types.Separators, p.take())
	}
	return l
}

// parseEnumDeclaration is enum Name [: base] { members[,] } [;]
func (p *Parser) parseEnumDeclaration(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.EnumDeclaration {
	d := &syntax.EnumDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Keyword:    p.take(),
	}
	p.validateModifiers(syntax.DeclEnum, p.modifierEnv(), mods)

	d.Identifier = p.expectIdentifier()
	if p.at(token.Colon) {
		l := &syntax.BaseList{Colon: p.take()}
		l.Types.Items = append(l.Types.Items, p.parseType())
		d.Bases = l
	}
	d.OpenBrace = p.expect(token.LBrace)

	pop := p.pushContext(CtxEnumMember)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		member := &syntax.EnumMemberDeclaration{
			Attributes: p.parseAttributeSections(),
			Identifier: p.expectIdentifier(),
		}
		if p.at(token.Assign) {
			member.Initializer = &syntax.EqualsValueClause{Equals: p.take(), Value: p.parseExpression()}
		}
		d.Members.Items = append(d.Members.Items, member)

		if p.at(token.Comma) {
			// a trailing comma before '}' is permitted
			d.Members.Separators = append(d.Members.Separators, p.take())
			continue
		}
		break
	}
	pop()

	d.CloseBrace = p.expect(token.RBrace)
	d.Semicolon = p.expectOptional(token.Semicolon)
	return d
}

// parseDelegateDeclaration is delegate ReturnType Name(parameters);
func (p *Parser) parseDelegateDeclaration(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.DelegateDeclaration {
	pop := p.pushContext(CtxDelegate)
	defer pop()

	d := &syntax.DelegateDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Keyword:    p.take(),
	}
	p.validateModifiers(syntax.DeclDelegate, p.modifierEnv(), mods)

	d.ReturnType = p.parseType()
	d.Identifier = p.expectIdentifier()
	d.Parameters = p.parseParameterList(token.LParen, token.RParen)
	d.Semicolon = p.expect(token.Semicolon)
	return d
}

// parseParameterList parses ( ... ) or [ ... ] parameter lists.
func (p *Parser) parseParameterList(open, close token.Kind) *syntax.ParameterList {
	pop := p.pushContext(CtxParameterList)
	defer pop()

	l := &syntax.ParameterList{Open: p.expect(open)}
	if !p.at(close) && !p.at(token.EOF) {
		for {
			param := &syntax.Parameter{Attributes: p.parseAttributeSections()}
			if p.atAny(token.KwRef, token.KwOut, token.KwParams) {
				param.Modifier = syntax.Some(p.take())
			}
			param.Type = p.parseType()
			param.Identifier = p.expectIdentifier()
			l.Parameters.Items = append(l.Parameters.Items, param)

			if !p.at(token.Comma) {
				break
			}
			l.Parameters.Separators = append(l.Parameters.Separators, p.take())
		}
	}
	l.Close = p.expect(close)
	return l
}
