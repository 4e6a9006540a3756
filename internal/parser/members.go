package parser

import (
	"shard/internal/diag"
	"shard/internal/syntax"
	"shard/internal/token"
)

// parseMemberList parses declarations until the closing brace of the
// enclosing type.
func (p *Parser) parseMemberList() []syntax.Member {
	var members []syntax.Member
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.stream.CreateRestorePoint()
		member, ok := p.parseMember()
		if ok {
			members = append(members, member)
		} else {
			p.error(diag.SynInvalidMemberDecl, p.currentSpan(), "Invalid member declaration")
			p.synchronize(token.RBrace)
		}
		if before == p.stream.CreateRestorePoint() && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
		}
	}
	return members
}

// parseMember dispatches a single member declaration from the first
// non-modifier token.
func (p *Parser) parseMember() (syntax.Member, bool) {
	attrs := p.parseAttributeSections()
	mods := p.parseModifiers()

	switch p.stream.Current().Kind {
	case token.KwClass, token.KwStruct, token.KwInterface:
		return p.parseTypeDeclaration(attrs, mods), true
	case token.KwEnum:
		return p.parseEnumDeclaration(attrs, mods), true
	case token.KwDelegate:
		return p.parseDelegateDeclaration(attrs, mods), true

	case token.KwImplicit, token.KwExplicit:
		return p.parseConversionOperator(attrs, mods), true

	case token.KwConst:
		return p.parseConstField(attrs, mods), true

	case token.KwEvent:
		return p.parseEvent(attrs, mods), true

	case token.Tilde:
		return p.parseDestructor(attrs, mods), true

	case token.Ident:
		if p.stream.Lookahead().Kind == token.LParen {
			return p.parseConstructor(attrs, mods), true
		}
		return p.parseTypePrefixedMember(attrs, mods), true
	}

	if p.stream.Current().Kind.IsPredefinedType() {
		return p.parseTypePrefixedMember(attrs, mods), true
	}

	if len(attrs) > 0 || len(mods) > 0 {
		p.error(diag.SynDeclarationExpected, p.currentSpan(), "Expected declaration")
		return &syntax.IncompleteMember{Attributes: attrs, Modifiers: mods}, true
	}
	return nil, false
}

// memberName is a member name with an optional explicit interface
// prefix. isThis marks an explicitly implemented indexer: the prefix
// ended in front of a 'this' keyword still in the stream.
type memberName struct {
	explicit *syntax.ExplicitInterface
	ident    token.Token
	isThis   bool
}

// parseMemberName consumes Ident ('.' Ident)* and splits off the dotted
// prefix, final dot included, as an ExplicitInterface. A '.' followed by
// 'this' ends the prefix in front of an indexer declaration.
func (p *Parser) parseMemberName() memberName {
	parts := []token.Token{p.expectIdentifier()}
	var dots []token.Token
	isThis := false

	for p.at(token.Dot) {
		next := p.stream.Lookahead().Kind
		if next == token.KwThis {
			dots = append(dots, p.take())
			isThis = true
			break
		}
		if next != token.Ident {
			break
		}
		dots = append(dots, p.take())
		parts = append(parts, p.take())
	}

	if isThis {
		return memberName{explicit: explicitInterface(parts, dots), isThis: true}
	}
	if len(parts) > 1 {
		return memberName{
			explicit: explicitInterface(parts[:len(parts)-1], dots),
			ident:    parts[len(parts)-1],
		}
	}
	return memberName{ident: parts[0]}
}

// explicitInterface builds the dotted prefix node; the last dot is the
// terminating one.
func explicitInterface(idents, dots []token.Token) *syntax.ExplicitInterface {
	var name syntax.TypeNode = &syntax.SimpleType{Identifier: idents[0]}
	for i := 1; i < len(idents); i++ {
		name = &syntax.QualifiedType{
			Left:  name,
			Dot:   dots[i-1],
			Right: &syntax.SimpleType{Identifier: idents[i]},
		}
	}
	return &syntax.ExplicitInterface{Name: name, Dot: dots[len(dots)-1]}
}

// parseTypePrefixedMember handles everything that starts with a type:
// fields, methods, properties, indexers, and operator declarations.
func (p *Parser) parseTypePrefixedMember(attrs []*syntax.AttributeSection, mods []token.Token) syntax.Member {
	typ := p.parseType()

	switch p.stream.Current().Kind {
	case token.KwThis:
		return p.parseIndexer(attrs, mods, typ, nil)
	case token.KwOperator:
		return p.parseOperator(attrs, mods, typ)
	}

	if !p.at(token.Ident) {
		// `int` followed by nothing usable: an incomplete member keeps the
		// consumed prefix
		p.error(diag.SynIdentifierExpected, p.previousEndSpan(), "Identifier expected")
		return &syntax.IncompleteMember{Attributes: attrs, Modifiers: mods, Type: typ}
	}

	name := p.parseMemberName()
	if name.isThis {
		return p.parseIndexer(attrs, mods, typ, name.explicit)
	}

	switch p.stream.Current().Kind {
	case token.LParen:
		return p.parseMethod(attrs, mods, typ, name)
	case token.LBrace:
		return p.parseProperty(attrs, mods, typ, name)
	case token.Semicolon, token.Assign, token.Comma:
		return p.parseField(attrs, mods, typ, name.ident)
	}

	p.error(diag.SynInvalidMemberDecl, p.currentSpan(), "Invalid member declaration")
	return &syntax.IncompleteMember{Attributes: attrs, Modifiers: mods, Type: typ}
}

// parseField continues a field declaration whose type and first
// declarator name are already consumed.
func (p *Parser) parseField(attrs []*syntax.AttributeSection, mods []token.Token, typ syntax.TypeNode, first token.Token) *syntax.FieldDeclaration {
	d := &syntax.FieldDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Type:       typ,
	}
	p.validateModifiers(syntax.DeclField, p.modifierEnv(), mods)
	d.Declarators = p.parseDeclarators(first)
	d.Semicolon = p.expect(token.Semicolon)
	return d
}

// parseDeclarators parses name [= value] (, name [= value])*.
func (p *Parser) parseDeclarators(first token.Token) syntax.SeparatedList[*syntax.VariableDeclarator] {
	var list syntax.SeparatedList[*syntax.VariableDeclarator]
	decl := &syntax.VariableDeclarator{Identifier: first}
	for {
		if p.at(token.Assign) {
			decl.Initializer = &syntax.EqualsValueClause{Equals: p.take(), Value: p.parseExpression()}
		}
		list.Items = append(list.Items, decl)
		if !p.at(token.Comma) {
			return list
		}
		list.Separators = append(list.Separators, p.take())
		decl = &syntax.VariableDeclarator{Identifier: p.expectIdentifier()}
	}
}

// parseConstField is const Type declarators ;
func (p *Parser) parseConstField(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.FieldDeclaration {
	pop := p.pushContext(CtxConstant)
	defer pop()

	constKw := p.take()
	typ := p.parseType()

	env := p.modifierEnv()
	env.IsConst = true
	d := &syntax.FieldDeclaration{
		Attributes:   attrs,
		Modifiers:    mods,
		ConstKeyword: syntax.Some(constKw),
		Type:         typ,
	}
	p.validateModifiers(syntax.DeclField, env, mods)
	d.Declarators = p.parseDeclarators(p.expectIdentifier())
	d.Semicolon = p.expect(token.Semicolon)
	return d
}

// parseMethod continues after Type Name when '(' follows.
func (p *Parser) parseMethod(attrs []*syntax.AttributeSection, mods []token.Token, typ syntax.TypeNode, name memberName) *syntax.MethodDeclaration {
	d := &syntax.MethodDeclaration{
		Attributes:        attrs,
		Modifiers:         mods,
		ReturnType:        typ,
		ExplicitInterface: name.explicit,
		Identifier:        name.ident,
	}
	p.validateModifiers(syntax.DeclMethod, p.modifierEnv(), mods)
	d.Parameters = p.parseParameterList(token.LParen, token.RParen)
	d.Body = p.parseMethodBody()
	return d
}

// parseMethodBody is a block or a terminating semicolon.
func (p *Parser) parseMethodBody() syntax.MethodBody {
	if p.at(token.LBrace) {
		return syntax.MethodBody{Block: p.parseBlock()}
	}
	return syntax.MethodBody{Semicolon: syntax.Some(p.expect(token.Semicolon))}
}

// parseConstructor is Name(parameters) [: base|this(args)] Body.
func (p *Parser) parseConstructor(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.ConstructorDeclaration {
	d := &syntax.ConstructorDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Identifier: p.take(),
	}
	p.validateModifiers(syntax.DeclConstructor, p.modifierEnv(), mods)
	d.Parameters = p.parseParameterList(token.LParen, token.RParen)

	if p.at(token.Colon) {
		init := &syntax.ConstructorInitializer{Colon: p.take()}
		if p.atAny(token.KwBase, token.KwThis) {
			init.Keyword = p.take()
		} else {
			p.error(diag.SynBaseOrThisExpected, p.currentSpan(), "Expected 'base' or 'this'")
			init.Keyword = p.synthesize(token.KwBase)
			p.recovering = true
		}
		init.Arguments = p.parseArgumentList()
		d.Initializer = init
	}

	d.Body = p.parseMethodBody()
	return d
}

// parseDestructor is ~Name() Body.
func (p *Parser) parseDestructor(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.DestructorDeclaration {
	d := &syntax.DestructorDeclaration{
		Attributes: attrs,
		Modifiers:  mods,
		Tilde:      p.take(),
	}
	p.validateModifiers(syntax.DeclDestructor, p.modifierEnv(), mods)
	d.Identifier = p.expectIdentifier()
	d.Parameters = p.parseParameterList(token.LParen, token.RParen)
	d.Body = p.parseMethodBody()
	return d
}

// parseOperator continues after ReturnType when 'operator' follows.
func (p *Parser) parseOperator(attrs []*syntax.AttributeSection, mods []token.Token, typ syntax.TypeNode) *syntax.OperatorDeclaration {
	d := &syntax.OperatorDeclaration{
		Attributes:      attrs,
		Modifiers:       mods,
		ReturnType:      typ,
		OperatorKeyword: p.take(),
	}
	p.validateModifiers(syntax.DeclOperator, p.modifierEnv(), mods)

	if isOverloadableOperator(p.stream.Current().Kind) {
		d.OperatorToken = p.take()
	} else {
		if !p.recovering {
			p.error(diag.SynTokenExpected, p.previousEndSpan(), "Overloadable operator expected")
		}
		d.OperatorToken = p.synthesize(token.Plus)
		p.recovering = true
	}

	d.Parameters = p.parseParameterList(token.LParen, token.RParen)
	d.Body = p.parseMethodBody()
	return d
}

func isOverloadableOperator(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Amp, token.Pipe, token.Caret, token.Shl, token.Shr,
		token.EqEq, token.BangEq, token.Lt, token.Gt, token.LtEq, token.GtEq,
		token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus,
		token.KwTrue, token.KwFalse:
		return true
	default:
		return false
	}
}

// parseConversionOperator is implicit|explicit operator Type (parameters) Body.
func (p *Parser) parseConversionOperator(attrs []*syntax.AttributeSection, mods []token.Token) *syntax.ConversionOperatorDeclaration {
	d := &syntax.ConversionOperatorDeclaration{
		Attributes:      attrs,
		Modifiers:       mods,
		ImplicitKeyword: p.take(),
	}
	p.validateModifiers(syntax.DeclConversionOperator, p.modifierEnv(), mods)
	d.OperatorKeyword = p.expectText(token.KwOperator, "operator")
	d.Type = p.parseType()
	d.Parameters = p.parseParameterList(token.LParen, token.RParen)
	d.Body = p.parseMethodBody()
	return d
}

// parseProperty continues after Type Name when '{' follows.
func (p *Parser) parseProperty(attrs []*syntax.AttributeSection, mods []token.Token, typ syntax.TypeNode, name memberName) *syntax.PropertyDeclaration {
	pop := p.pushContext(CtxProperty)
	defer pop()

	d := &syntax.PropertyDeclaration{
		Attributes:        attrs,
		Modifiers:         mods,
		Type:              typ,
		ExplicitInterface: name.explicit,
		Identifier:        name.ident,
	}
	p.validateModifiers(syntax.DeclProperty, p.modifierEnv(), mods)
	d.OpenBrace = p.take()
	d.Accessors = p.parseAccessorList(accessorGetSet)
	d.CloseBrace = p.expect(token.RBrace)
	return d
}

// parseIndexer continues after Type [Iface.] when 'this' follows.
func (p *Parser) parseIndexer(attrs []*syntax.AttributeSection, mods []token.Token, typ syntax.TypeNode, explicit *syntax.ExplicitInterface) *syntax.IndexerDeclaration {
	pop := p.pushContext(CtxIndexer)
	defer pop()

	d := &syntax.IndexerDeclaration{
		Attributes:        attrs,
		Modifiers:         mods,
		Type:              typ,
		ExplicitInterface: explicit,
		ThisKeyword:       p.take(),
	}
	p.validateModifiers(syntax.DeclIndexer, p.modifierEnv(), mods)
	d.Parameters = p.parseParameterList(token.LBracket, token.RBracket)
	d.OpenBrace = p.expect(token.LBrace)
	d.Accessors = p.parseAccessorList(accessorGetSet)
	d.CloseBrace = p.expect(token.RBrace)
	return d
}

// parseEvent branches on whether the declared name is followed by braces
// (accessor form) or a declarator list (field form).
func (p *Parser) parseEvent(attrs []*syntax.AttributeSection, mods []token.Token) syntax.Member {
	pop := p.pushContext(CtxEvent)
	defer pop()

	eventKw := p.take()
	typ := p.parseType()
	name := p.parseMemberName()

	if p.at(token.LBrace) {
		d := &syntax.EventDeclaration{
			Attributes:        attrs,
			Modifiers:         mods,
			EventKeyword:      eventKw,
			Type:              typ,
			ExplicitInterface: name.explicit,
			Identifier:        name.ident,
			OpenBrace:         p.take(),
		}
		p.validateModifiers(syntax.DeclEvent, p.modifierEnv(), mods)
		d.Accessors = p.parseAccessorList(accessorAddRemove)
		d.CloseBrace = p.expect(token.RBrace)
		return d
	}

	d := &syntax.EventFieldDeclaration{
		Attributes:   attrs,
		Modifiers:    mods,
		EventKeyword: eventKw,
		Type:         typ,
	}
	p.validateModifiers(syntax.DeclEventField, p.modifierEnv(), mods)
	d.Declarators = p.parseDeclarators(name.ident)
	d.Semicolon = p.expect(token.Semicolon)
	return d
}

// accessor keyword sets per declaring construct
type accessorSet uint8

const (
	accessorGetSet accessorSet = iota
	accessorAddRemove
)

func (s accessorSet) classify(text string) (syntax.AccessorKind, token.Kind) {
	switch s {
	case accessorGetSet:
		switch text {
		case "get":
			return syntax.AccessorGet, token.KwGet
		case "set":
			return syntax.AccessorSet, token.KwSet
		}
	case accessorAddRemove:
		switch text {
		case "add":
			return syntax.AccessorAdd, token.KwAdd
		case "remove":
			return syntax.AccessorRemove, token.KwRemove
		}
	}
	return syntax.AccessorIncomplete, token.Ident
}

func (s accessorSet) message() string {
	if s == accessorAddRemove {
		return "A add or remove accessor expected"
	}
	return "A get or set accessor expected"
}

func (s accessorSet) code() diag.Code {
	if s == accessorAddRemove {
		return diag.SynAddOrRemoveExpected
	}
	return diag.SynGetOrSetExpected
}

// parseAccessorList parses accessor declarations until the closing brace.
func (p *Parser) parseAccessorList(set accessorSet) []*syntax.AccessorDeclaration {
	var out []*syntax.AccessorDeclaration
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.stream.CreateRestorePoint()
		out = append(out, p.parseAccessor(set))
		if before == p.stream.CreateRestorePoint() {
			if p.at(token.RBrace) || p.at(token.EOF) {
				break
			}
			p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
		}
	}
	return out
}

// parseAccessor is [attributes] [modifiers] keyword (block | ';'). The
// keyword is an identifier reclassified to the contextual accessor kind;
// a wrong word yields an incomplete accessor.
func (p *Parser) parseAccessor(set accessorSet) *syntax.AccessorDeclaration {
	d := &syntax.AccessorDeclaration{
		Attributes: p.parseAttributeSections(),
		Modifiers:  p.parseModifiers(),
	}

	if p.at(token.Ident) {
		kw := p.take()
		accessor, kind := set.classify(kw.Text)
		if accessor == syntax.AccessorIncomplete {
			p.error(set.code(), kw.Span, set.message())
		}
		d.Accessor = accessor
		d.Keyword = kw.WithKind(kind)
	} else {
		p.error(set.code(), p.currentSpan(), set.message())
		d.Keyword = p.synthesize(token.Ident)
		if !p.at(token.LBrace) && !p.at(token.Semicolon) {
			return d
		}
	}

	if p.at(token.LBrace) {
		d.Body = p.parseBlock()
	}
	// a body-less accessor requires the semicolon; after a block a stray
	// one is tolerated
	d.Semicolon = p.expectIf(token.Semicolon, d.Body == nil, token.KindText(token.Semicolon))
	return d
}
