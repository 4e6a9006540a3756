package syntax

import (
	"shard/internal/token"
)

// PredefinedType is a built-in type keyword used in type position.
type PredefinedType struct {
	Keyword token.Token
}

func (*PredefinedType) Kind() NodeKind      { return KindPredefinedType }
func (t *PredefinedType) Elements() []Element { return build(t.Keyword) }
func (*PredefinedType) typeNode()           {}

// SimpleType is a single identifier used as a type name.
type SimpleType struct {
	Identifier token.Token
}

func (*SimpleType) Kind() NodeKind        { return KindSimpleType }
func (t *SimpleType) Elements() []Element { return build(t.Identifier) }
func (*SimpleType) typeNode()             {}

// QualifiedType is Left.Right, left-nested for dotted names like A.B.C.
type QualifiedType struct {
	Left  TypeNode
	Dot   token.Token
	Right *SimpleType
}

func (*QualifiedType) Kind() NodeKind        { return KindQualifiedType }
func (t *QualifiedType) Elements() []Element { return build(t.Left, t.Dot, ptr(t.Right)) }
func (*QualifiedType) typeNode()             {}

// PointerType is ElementType*.
type PointerType struct {
	ElementType TypeNode
	Star        token.Token
}

func (*PointerType) Kind() NodeKind        { return KindPointerType }
func (t *PointerType) Elements() []Element { return build(t.ElementType, t.Star) }
func (*PointerType) typeNode()             {}

// ArrayRankSpecifier is one [ ... ] rank: empty, or sized by expressions.
type ArrayRankSpecifier struct {
	OpenBracket  token.Token
	Sizes        SeparatedList[Expr]
	CloseBracket token.Token
}

func (*ArrayRankSpecifier) Kind() NodeKind { return KindArrayRankSpecifier }
func (r *ArrayRankSpecifier) Elements() []Element {
	return build(r.OpenBracket, r.Sizes, r.CloseBracket)
}

// ArrayType is ElementType followed by one or more rank specifiers.
// IsValidType distinguishes a type-position array (all ranks empty) from
// an expression-position element-access prefix that only parses like one.
type ArrayType struct {
	ElementType TypeNode
	Ranks       []*ArrayRankSpecifier
	IsValidType bool
}

func (*ArrayType) Kind() NodeKind { return KindArrayType }
func (t *ArrayType) Elements() []Element {
	return build(t.ElementType, nodes(t.Ranks))
}
func (*ArrayType) typeNode() {}
