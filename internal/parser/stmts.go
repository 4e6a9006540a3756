package parser

import (
	"shard/internal/syntax"
	"shard/internal/token"
)

// parseBlock is { statements }.
func (p *Parser) parseBlock() *syntax.BlockStatement {
	b := &syntax.BlockStatement{OpenBrace: p.expect(token.LBrace)}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.skipDirectives()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.stream.CreateRestorePoint()
		b.Statements = append(b.Statements, p.parseStatement())
		if before == p.stream.CreateRestorePoint() {
			if p.at(token.RBrace) || p.at(token.EOF) {
				break
			}
			p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
		}
	}
	b.CloseBrace = p.expect(token.RBrace)
	return b
}

// parseStatement dispatches on the current token. Identifiers need a
// second look: a following ':' means a label, and a type-shaped prefix
// followed by an identifier means a local declaration.
func (p *Parser) parseStatement() syntax.Stmt {
	pop := p.pushContext(CtxStatement)
	defer pop()

	switch p.stream.Current().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		return &syntax.EmptyStatement{Semicolon: p.take()}
	case token.KwIf:
		return p.parseIf()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwFor:
		return p.parseFor()
	case token.KwForeach:
		return p.parseForeach()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDo()
	case token.KwBreak:
		return &syntax.BreakStatement{Keyword: p.take(), Semicolon: p.expect(token.Semicolon)}
	case token.KwContinue:
		return &syntax.ContinueStatement{Keyword: p.take(), Semicolon: p.expect(token.Semicolon)}
	case token.KwGoto:
		return p.parseGoto()
	case token.KwReturn:
		s := &syntax.ReturnStatement{Keyword: p.take()}
		if !p.at(token.Semicolon) {
			s.Expression = p.parseExpression()
		}
		s.Semicolon = p.expect(token.Semicolon)
		return s
	case token.KwThrow:
		s := &syntax.ThrowStatement{Keyword: p.take()}
		if !p.at(token.Semicolon) {
			s.Expression = p.parseExpression()
		}
		s.Semicolon = p.expect(token.Semicolon)
		return s
	case token.KwTry:
		return p.parseTry()
	case token.KwChecked, token.KwUnchecked:
		if p.stream.Lookahead().Kind == token.LBrace {
			return &syntax.CheckedStatement{Keyword: p.take(), Block: p.parseBlock()}
		}
		// checked(expr) falls through to an expression statement
	case token.KwLock:
		s := &syntax.LockStatement{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		s.Expression = p.parseExpression()
		s.CloseParen = p.expect(token.RParen)
		s.Body = p.parseStatement()
		return s
	case token.KwUsing:
		s := &syntax.UsingStatement{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		s.Resource = p.parseVarDeclOrExprList(token.RParen)
		s.CloseParen = p.expect(token.RParen)
		s.Body = p.parseStatement()
		return s
	case token.KwFixed:
		s := &syntax.FixedStatement{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		s.Declaration = p.parseVariableDeclaration()
		s.CloseParen = p.expect(token.RParen)
		s.Body = p.parseStatement()
		return s
	case token.KwUnsafe:
		return &syntax.UnsafeStatement{Keyword: p.take(), Block: p.parseBlock()}
	case token.KwConst:
		s := &syntax.DeclarationStatement{ConstKeyword: syntax.Some(p.take())}
		s.Declaration = p.parseVariableDeclaration()
		s.Semicolon = p.expect(token.Semicolon)
		return s
	case token.Ident:
		if p.stream.Lookahead().Kind == token.Colon {
			return &syntax.LabeledStatement{
				Label:     p.take(),
				Colon:     p.take(),
				Statement: p.parseStatement(),
			}
		}
	}

	// local declaration, decided speculatively: a type shape followed by
	// an identifier wins; anything else re-parses as an expression
	if decl, ok := p.tryParseDeclarationStatement(); ok {
		return decl
	}

	s := &syntax.ExpressionStatement{Expression: p.parseExpression()}
	s.Semicolon = p.expect(token.Semicolon)
	return s
}

// tryParseDeclarationStatement speculatively parses `Type ident ...` and
// rolls back when the shape does not hold.
func (p *Parser) tryParseDeclarationStatement() (syntax.Stmt, bool) {
	cur := p.stream.Current().Kind
	if cur != token.Ident && !cur.IsPredefinedType() {
		return nil, false
	}

	s := p.speculate()
	typ, ok := p.parseTypeOpt()
	if !ok || !p.at(token.Ident) {
		p.rollback(s)
		return nil, false
	}
	p.commit(s)

	decl := &syntax.VariableDeclaration{Type: typ}
	decl.Declarators = p.parseDeclarators(p.take())
	return &syntax.DeclarationStatement{
		Declaration: decl,
		Semicolon:   p.expect(token.Semicolon),
	}, true
}

// parseVariableDeclaration is Type declarators, for contexts that demand
// a declaration (fixed, const).
func (p *Parser) parseVariableDeclaration() *syntax.VariableDeclaration {
	d := &syntax.VariableDeclaration{Type: p.parseType()}
	d.Declarators = p.parseDeclarators(p.expectIdentifier())
	return d
}

// parseVarDeclOrExprList parses a for-initializer or using-resource:
// one variable declaration, or a comma-separated expression list. nil
// when the terminator immediately follows.
func (p *Parser) parseVarDeclOrExprList(terminator token.Kind) *syntax.VariableDeclarationOrExpressionList {
	if p.at(terminator) || p.at(token.Semicolon) {
		return nil
	}

	cur := p.stream.Current().Kind
	if cur == token.Ident || cur.IsPredefinedType() {
		s := p.speculate()
		typ, ok := p.parseTypeOpt()
		if ok && p.at(token.Ident) {
			p.commit(s)
			decl := &syntax.VariableDeclaration{Type: typ}
			decl.Declarators = p.parseDeclarators(p.take())
			return &syntax.VariableDeclarationOrExpressionList{Declaration: decl}
		}
		p.rollback(s)
	}

	out := &syntax.VariableDeclarationOrExpressionList{}
	for {
		out.Expressions.Items = append(out.Expressions.Items, p.parseExpression())
		if !p.at(token.Comma) {
			return out
		}
		out.Expressions.Separators = append(out.Expressions.Separators, p.take())
	}
}

func (p *Parser) parseIf() *syntax.IfStatement {
	s := &syntax.IfStatement{
		IfKeyword: p.take(),
		OpenParen: p.expect(token.LParen),
	}
	s.Condition = p.parseExpression()
	s.CloseParen = p.expect(token.RParen)
	s.Then = p.parseStatement()
	if p.at(token.KwElse) {
		s.Else = &syntax.ElseClause{ElseKeyword: p.take(), Statement: p.parseStatement()}
	}
	return s
}

func (p *Parser) parseWhile() *syntax.WhileStatement {
	s := &syntax.WhileStatement{
		WhileKeyword: p.take(),
		OpenParen:    p.expect(token.LParen),
	}
	s.Condition = p.parseExpression()
	s.CloseParen = p.expect(token.RParen)
	s.Body = p.parseStatement()
	return s
}

func (p *Parser) parseDo() *syntax.DoStatement {
	s := &syntax.DoStatement{DoKeyword: p.take()}
	s.Body = p.parseStatement()
	s.WhileKeyword = p.expectText(token.KwWhile, "while")
	s.OpenParen = p.expect(token.LParen)
	s.Condition = p.parseExpression()
	s.CloseParen = p.expect(token.RParen)
	s.Semicolon = p.expect(token.Semicolon)
	return s
}

func (p *Parser) parseFor() *syntax.ForStatement {
	s := &syntax.ForStatement{
		ForKeyword: p.take(),
		OpenParen:  p.expect(token.LParen),
	}
	s.Initializer = p.parseVarDeclOrExprList(token.Semicolon)
	s.FirstSemicolon = p.expect(token.Semicolon)
	if !p.at(token.Semicolon) {
		s.Condition = p.parseExpression()
	}
	s.SecondSemicolon = p.expect(token.Semicolon)
	if !p.at(token.RParen) && !p.at(token.EOF) {
		for {
			s.Increments.Items = append(s.Increments.Items, p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
			s.Increments.Separators = append(s.Increments.Separators, p.take())
		}
	}
	s.CloseParen = p.expect(token.RParen)
	s.Body = p.parseStatement()
	return s
}

func (p *Parser) parseForeach() *syntax.ForeachStatement {
	s := &syntax.ForeachStatement{
		ForeachKeyword: p.take(),
		OpenParen:      p.expect(token.LParen),
	}
	s.Type = p.parseType()
	s.Identifier = p.expectIdentifier()
	s.InKeyword = p.expectText(token.KwIn, "in")
	s.Collection = p.parseExpression()
	s.CloseParen = p.expect(token.RParen)
	s.Body = p.parseStatement()
	return s
}

func (p *Parser) parseSwitch() *syntax.SwitchStatement {
	s := &syntax.SwitchStatement{
		SwitchKeyword: p.take(),
		OpenParen:     p.expect(token.LParen),
	}
	s.Value = p.parseExpression()
	s.CloseParen = p.expect(token.RParen)
	s.OpenBrace = p.expect(token.LBrace)

	for p.atAny(token.KwCase, token.KwDefault) {
		section := &syntax.SwitchSection{}
		for p.atAny(token.KwCase, token.KwDefault) {
			label := &syntax.SwitchLabel{Keyword: p.take()}
			if label.Keyword.Kind == token.KwCase {
				label.Value = p.parseExpression()
			}
			label.Colon = p.expect(token.Colon)
			section.Labels = append(section.Labels, label)
		}
		for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
			before := p.stream.CreateRestorePoint()
			section.Statements = append(section.Statements, p.parseStatement())
			if before == p.stream.CreateRestorePoint() {
				if p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
					break
				}
				p.skipped = append(p.skipped, token.SkipToken(p.stream.Advance()))
			}
		}
		s.Sections = append(s.Sections, section)
	}

	s.CloseBrace = p.expect(token.RBrace)
	return s
}

func (p *Parser) parseGoto() *syntax.GotoStatement {
	s := &syntax.GotoStatement{GotoKeyword: p.take()}
	switch p.stream.Current().Kind {
	case token.KwCase:
		s.CaseKeyword = syntax.Some(p.take())
		s.Target = p.parseExpression()
	case token.KwDefault:
		s.CaseKeyword = syntax.Some(p.take())
	default:
		s.Target = &syntax.IdentifierExpression{Identifier: p.expectIdentifier()}
	}
	s.Semicolon = p.expect(token.Semicolon)
	return s
}

func (p *Parser) parseTry() *syntax.TryStatement {
	s := &syntax.TryStatement{TryKeyword: p.take()}
	s.Block = p.parseBlock()

	for p.at(token.KwCatch) {
		clause := &syntax.CatchClause{Keyword: p.take()}
		if p.at(token.LParen) {
			decl := &syntax.CatchDeclaration{OpenParen: p.take()}
			decl.Type = p.parseType()
			decl.Identifier = p.expectOptional(token.Ident)
			decl.CloseParen = p.expect(token.RParen)
			clause.Declaration = decl
		}
		clause.Block = p.parseBlock()
		s.Catches = append(s.Catches, clause)
	}

	if p.at(token.KwFinally) {
		s.Finally = &syntax.FinallyClause{Keyword: p.take(), Block: p.parseBlock()}
	}
	return s
}
