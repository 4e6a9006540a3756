package parser

import (
	"shard/internal/token"
)

// Context tags the grammatical scope the parser is currently inside.
// The stack of contexts drives modifier validation and decides which
// tokens count as a sane continuation during error recovery.
type Context uint8

const (
	CtxNone Context = iota
	CtxNamespace
	CtxType
	CtxDelegate
	CtxParameterList
	CtxAttributeList
	CtxEnumMember
	CtxProperty
	CtxIndexer
	CtxEvent
	CtxConstant
	CtxStatement
)

var contextNames = [...]string{
	"none", "namespace", "type", "delegate", "parameter-list",
	"attribute-list", "enum-member", "property", "indexer", "event",
	"constant", "statement",
}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return "invalid"
}

// pushContext enters a scope and returns the matching pop. Every parse
// function that pushes must defer the returned func so the stack unwinds
// on all exit paths.
func (p *Parser) pushContext(c Context) func() {
	p.ctx = append(p.ctx, c)
	return func() {
		if len(p.ctx) > 0 {
			p.ctx = p.ctx[:len(p.ctx)-1]
		}
	}
}

// currentContext returns the innermost context, or CtxNone on underflow.
func (p *Parser) currentContext() Context {
	if len(p.ctx) == 0 {
		return CtxNone
	}
	return p.ctx[len(p.ctx)-1]
}

// isTokenValidInContext reports whether k legitimately begins or
// continues constructs of the given context.
func isTokenValidInContext(c Context, k token.Kind) bool {
	if k.IsModifier() {
		switch c {
		case CtxNamespace, CtxType, CtxProperty, CtxIndexer, CtxEvent:
			return true
		}
	}

	switch c {
	case CtxNamespace:
		switch k {
		case token.KwNamespace, token.KwUsing, token.KwClass, token.KwStruct,
			token.KwInterface, token.KwEnum, token.KwDelegate,
			token.LBracket, token.RBrace:
			return true
		}

	case CtxType:
		switch k {
		case token.KwClass, token.KwStruct, token.KwInterface, token.KwEnum,
			token.KwDelegate, token.KwConst, token.KwEvent, token.KwImplicit,
			token.KwExplicit, token.Tilde, token.Ident, token.LBracket,
			token.RBrace:
			return true
		}
		return k.IsPredefinedType()

	case CtxDelegate:
		switch k {
		case token.LParen, token.RParen, token.Semicolon:
			return true
		}

	case CtxParameterList:
		switch k {
		case token.Comma, token.RParen, token.RBracket, token.Ident,
			token.KwRef, token.KwOut, token.KwParams, token.LBracket:
			return true
		}
		return k.IsPredefinedType()

	case CtxAttributeList:
		switch k {
		case token.Comma, token.RBracket, token.Ident, token.Colon:
			return true
		}

	case CtxEnumMember:
		switch k {
		case token.Comma, token.RBrace, token.Ident, token.LBracket, token.Assign:
			return true
		}

	case CtxProperty, CtxIndexer, CtxEvent:
		switch k {
		case token.LBrace, token.RBrace, token.Ident, token.Semicolon,
			token.LBracket:
			return true
		}

	case CtxConstant:
		switch k {
		case token.Comma, token.Semicolon, token.Assign, token.Ident:
			return true
		}

	case CtxStatement:
		switch k {
		case token.Semicolon, token.LBrace, token.RBrace, token.KwIf,
			token.KwElse, token.KwSwitch, token.KwCase, token.KwDefault,
			token.KwFor, token.KwForeach, token.KwWhile, token.KwDo,
			token.KwBreak, token.KwContinue, token.KwGoto, token.KwReturn,
			token.KwThrow, token.KwTry, token.KwCatch, token.KwFinally,
			token.KwChecked, token.KwUnchecked, token.KwLock, token.KwUsing,
			token.KwFixed, token.KwUnsafe, token.KwConst, token.Ident,
			token.KwThis, token.KwBase, token.KwNew, token.NumberLit,
			token.StringLit, token.CharLit, token.KwTrue, token.KwFalse,
			token.KwNull:
			return true
		}
		return k.IsPredefinedType()
	}
	return false
}

// isTokenValidInPrecedingContext walks the context stack outward and
// reports whether any enclosing scope accepts k. Recovery uses this to
// stop skipping once the surrounding scope's follow set is reached.
func (p *Parser) isTokenValidInPrecedingContext(k token.Kind) bool {
	for i := len(p.ctx) - 1; i >= 0; i-- {
		if isTokenValidInContext(p.ctx[i], k) {
			return true
		}
	}
	return false
}
