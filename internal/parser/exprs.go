package parser

import (
	"shard/internal/diag"
	"shard/internal/syntax"
	"shard/internal/token"
)

// Binary precedence, lowest to highest. Assignment and the conditional
// operator sit above this table; unary and postfix below it.
const (
	precConditionalOr  = 1 // ||
	precConditionalAnd = 2 // &&
	precBitwiseOr      = 3 // |
	precBitwiseAnd     = 4 // &
	precBitwiseXor     = 5 // ^
	precEquality       = 6 // == !=
	precRelational     = 7 // < <= > >= is as
	precShift          = 8 // << >>
	precAdditive       = 9 // + -
	precMultiplicative = 10 // * / %
)

// binaryPrecedence returns the level for a binary operator, or 0.
func binaryPrecedence(k token.Kind) int {
	switch k {
	case token.OrOr:
		return precConditionalOr
	case token.AndAnd:
		return precConditionalAnd
	case token.Pipe:
		return precBitwiseOr
	case token.Amp:
		return precBitwiseAnd
	case token.Caret:
		return precBitwiseXor
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwIs, token.KwAs:
		return precRelational
	case token.Shl, token.Shr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return 0
	}
}

// parseExpression parses a full expression including assignment, which
// associates to the right.
func (p *Parser) parseExpression() syntax.Expr {
	left := p.parseConditional()
	if p.stream.Current().Kind.IsAssignment() {
		op := p.take()
		return &syntax.AssignmentExpression{
			Target:   left,
			Operator: op,
			Value:    p.parseExpression(),
		}
	}
	return left
}

// parseConditional parses cond ? a : b, right-associative.
func (p *Parser) parseConditional() syntax.Expr {
	cond := p.parseBinary(1)
	if !p.at(token.Question) {
		return cond
	}
	e := &syntax.ConditionalExpression{
		Condition: cond,
		Question:  p.take(),
	}
	e.WhenTrue = p.parseExpression()
	e.Colon = p.expect(token.Colon)
	e.WhenFalse = p.parseExpression()
	return e
}

// parseBinary climbs the precedence table; all levels associate left.
// 'is' and 'as' take a type on the right instead of an expression.
func (p *Parser) parseBinary(minPrec int) syntax.Expr {
	left := p.parseUnary()
	for {
		k := p.stream.Current().Kind
		prec := binaryPrecedence(k)
		if prec == 0 || prec < minPrec {
			return left
		}

		switch k {
		case token.KwIs:
			left = &syntax.IsExpression{Operand: left, Keyword: p.take(), Type: p.parseType()}
		case token.KwAs:
			left = &syntax.AsExpression{Operand: left, Keyword: p.take(), Type: p.parseType()}
		default:
			op := p.take()
			left = &syntax.BinaryExpression{
				Left:     left,
				Operator: op,
				Right:    p.parseBinary(prec + 1),
			}
		}
	}
}

// parseUnary handles prefix operators and the cast form.
func (p *Parser) parseUnary() syntax.Expr {
	switch p.stream.Current().Kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.Star,
		token.Amp, token.PlusPlus, token.MinusMinus:
		return &syntax.PrefixUnaryExpression{Operator: p.take(), Operand: p.parseUnary()}

	case token.LParen:
		if cast, ok := p.tryParseCast(); ok {
			return cast
		}
	}
	return p.parsePostfix()
}

// tryParseCast speculatively reads '(' Type ')' and accepts the cast
// only when the token after ')' can start the operand. Array types must
// additionally be valid in type position (no sized ranks).
func (p *Parser) tryParseCast() (syntax.Expr, bool) {
	s := p.speculate()
	open := p.take()

	typ, ok := p.parseTypeOpt()
	if !ok || !p.at(token.RParen) {
		p.rollback(s)
		return nil, false
	}
	if arr, isArr := typ.(*syntax.ArrayType); isArr && !arr.IsValidType {
		p.rollback(s)
		return nil, false
	}
	closeParen := p.take()
	if !startsCastOperand(p.stream.Current().Kind) {
		p.rollback(s)
		return nil, false
	}

	p.commit(s)
	return &syntax.CastExpression{
		OpenParen:  open,
		Type:       typ,
		CloseParen: closeParen,
		Operand:    p.parseUnary(),
	}, true
}

// parsePostfix applies suffixes to a primary in a loop.
func (p *Parser) parsePostfix() syntax.Expr {
	expr := p.parsePrimary()
	for {
		switch p.stream.Current().Kind {
		case token.Dot, token.Arrow:
			op := p.take()
			expr = &syntax.MemberAccessExpression{
				Expression: expr,
				Operator:   op,
				Name:       p.expectIdentifier(),
			}

		case token.LParen:
			expr = &syntax.InvocationExpression{
				Expression: expr,
				Arguments:  p.parseArgumentList(),
			}

		case token.LBracket:
			access := &syntax.ElementAccessExpression{
				Expression:  expr,
				OpenBracket: p.take(),
			}
			if !p.at(token.RBracket) && !p.at(token.EOF) {
				for {
					access.Indexes.Items = append(access.Indexes.Items, p.parseExpression())
					if !p.at(token.Comma) {
						break
					}
					access.Indexes.Separators = append(access.Indexes.Separators, p.take())
				}
			}
			access.CloseBracket = p.expect(token.RBracket)
			expr = access

		case token.PlusPlus, token.MinusMinus:
			expr = &syntax.PostfixUnaryExpression{Operand: expr, Operator: p.take()}

		default:
			return expr
		}
	}
}

// parseArgumentList is ( [ref|out] expression, ... ).
func (p *Parser) parseArgumentList() *syntax.ArgumentList {
	l := &syntax.ArgumentList{OpenParen: p.expect(token.LParen)}
	if !p.at(token.RParen) && !p.at(token.EOF) {
		for {
			arg := &syntax.Argument{}
			if p.atAny(token.KwRef, token.KwOut) {
				arg.Modifier = syntax.Some(p.take())
			}
			arg.Expression = p.parseExpression()
			l.Arguments.Items = append(l.Arguments.Items, arg)
			if !p.at(token.Comma) {
				break
			}
			l.Arguments.Separators = append(l.Arguments.Separators, p.take())
		}
	}
	l.CloseParen = p.expect(token.RParen)
	return l
}

// parsePrimary recognizes the leaf expressions.
func (p *Parser) parsePrimary() syntax.Expr {
	switch p.stream.Current().Kind {
	case token.NumberLit, token.StringLit, token.CharLit,
		token.KwTrue, token.KwFalse, token.KwNull:
		return &syntax.LiteralExpression{Literal: p.take()}

	case token.KwThis:
		return &syntax.ThisExpression{Keyword: p.take()}

	case token.KwBase:
		return &syntax.BaseExpression{Keyword: p.take()}

	case token.KwNew:
		return p.parseCreation()

	case token.KwStackalloc:
		return &syntax.StackAllocExpression{Keyword: p.take(), Type: p.parseType()}

	case token.KwSizeof:
		e := &syntax.SizeOfExpression{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		e.Type = p.parseType()
		e.CloseParen = p.expect(token.RParen)
		return e

	case token.KwTypeof:
		e := &syntax.TypeOfExpression{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		e.Type = p.parseType()
		e.CloseParen = p.expect(token.RParen)
		return e

	case token.KwChecked, token.KwUnchecked:
		e := &syntax.CheckedExpression{Keyword: p.take(), OpenParen: p.expect(token.LParen)}
		e.Expression = p.parseExpression()
		e.CloseParen = p.expect(token.RParen)
		return e

	case token.LParen:
		e := &syntax.ParenthesizedExpression{OpenParen: p.take()}
		e.Expression = p.parseExpression()
		e.CloseParen = p.expect(token.RParen)
		return e

	case token.Ident:
		return &syntax.IdentifierExpression{Identifier: p.take()}

	case token.LBrace:
		return p.parseArrayInitializer()
	}

	if p.stream.Current().Kind.IsPredefinedType() {
		return &syntax.PredefinedTypeExpression{Keyword: p.take()}
	}

	if !p.recovering {
		p.error(diag.SynExpressionExpected, p.currentSpan(), "Expected expression")
	}
	p.recovering = true
	return &syntax.ErrorExpression{}
}

// parseCreation is new Type(args) or new Type[sizes]... { init }.
func (p *Parser) parseCreation() syntax.Expr {
	newKw := p.take()

	var core syntax.TypeNode
	if t, ok := p.parseTypeCoreOnly(); ok {
		core = t
	} else {
		p.error(diag.SynTypeExpected, p.previousEndSpan(), "Type expected")
		p.recovering = true
		core = &syntax.SimpleType{Identifier: p.synthesize(token.Ident)}
	}

	if p.at(token.LBracket) {
		typ := p.parseTypeSuffix(core)
		e := &syntax.ArrayCreationExpression{NewKeyword: newKw, Type: typ}
		if p.at(token.LBrace) {
			e.Initializer = p.parseArrayInitializer()
		}
		return e
	}
	if p.at(token.Star) {
		core = p.parseTypeSuffix(core)
	}

	return &syntax.ObjectCreationExpression{
		NewKeyword: newKw,
		Type:       core,
		Arguments:  p.parseArgumentList(),
	}
}

// parseTypeCoreOnly parses a predefined or qualified name without
// pointer or array suffixes, which creation handles itself.
func (p *Parser) parseTypeCoreOnly() (syntax.TypeNode, bool) {
	switch {
	case p.stream.Current().Kind.IsPredefinedType():
		return &syntax.PredefinedType{Keyword: p.take()}, true
	case p.at(token.Ident):
		return p.parseTypeName(), true
	default:
		return nil, false
	}
}

// parseArrayInitializer is { values }, possibly nested and with a
// trailing comma.
func (p *Parser) parseArrayInitializer() *syntax.ArrayInitializerExpression {
	e := &syntax.ArrayInitializerExpression{OpenBrace: p.expect(token.LBrace)}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.LBrace) {
			e.Values.Items = append(e.Values.Items, p.parseArrayInitializer())
		} else {
			e.Values.Items = append(e.Values.Items, p.parseExpression())
		}
		if !p.at(token.Comma) {
			break
		}
		e.Values.Separators = append(e.Values.Separators, p.take())
	}
	e.CloseBrace = p.expect(token.RBrace)
	return e
}
