package syntax

import (
	"shard/internal/token"
)

// LiteralExpression wraps a numeric, string, character, boolean, or null
// literal token. The decoded constant lives on the token's Value.
type LiteralExpression struct {
	Literal token.Token
}

func (*LiteralExpression) Kind() NodeKind        { return KindLiteralExpression }
func (e *LiteralExpression) Elements() []Element { return build(e.Literal) }
func (*LiteralExpression) exprNode()             {}

// IdentifierExpression is a bare identifier in expression position.
type IdentifierExpression struct {
	Identifier token.Token
}

func (*IdentifierExpression) Kind() NodeKind        { return KindIdentifierExpression }
func (e *IdentifierExpression) Elements() []Element { return build(e.Identifier) }
func (*IdentifierExpression) exprNode()             {}

// ThisExpression is the 'this' keyword.
type ThisExpression struct {
	Keyword token.Token
}

func (*ThisExpression) Kind() NodeKind        { return KindThisExpression }
func (e *ThisExpression) Elements() []Element { return build(e.Keyword) }
func (*ThisExpression) exprNode()             {}

// BaseExpression is the 'base' keyword.
type BaseExpression struct {
	Keyword token.Token
}

func (*BaseExpression) Kind() NodeKind        { return KindBaseExpression }
func (e *BaseExpression) Elements() []Element { return build(e.Keyword) }
func (*BaseExpression) exprNode()             {}

// PredefinedTypeExpression is a built-in type keyword in expression
// position (receiver of a static member access like int.Parse).
type PredefinedTypeExpression struct {
	Keyword token.Token
}

func (*PredefinedTypeExpression) Kind() NodeKind        { return KindPredefinedTypeExpression }
func (e *PredefinedTypeExpression) Elements() []Element { return build(e.Keyword) }
func (*PredefinedTypeExpression) exprNode()             {}

// ParenthesizedExpression is ( Expression ).
type ParenthesizedExpression struct {
	OpenParen  token.Token
	Expression Expr
	CloseParen token.Token
}

func (*ParenthesizedExpression) Kind() NodeKind { return KindParenthesizedExpression }
func (e *ParenthesizedExpression) Elements() []Element {
	return build(e.OpenParen, e.Expression, e.CloseParen)
}
func (*ParenthesizedExpression) exprNode() {}

// MemberAccessExpression is Expression.Name or Expression->Name; the
// operator token decides which node kind it reports.
type MemberAccessExpression struct {
	Expression Expr
	Operator   token.Token
	Name       token.Token
}

func (e *MemberAccessExpression) Kind() NodeKind {
	if e.Operator.Kind == token.Arrow {
		return KindPointerMemberAccessExpression
	}
	return KindMemberAccessExpression
}
func (e *MemberAccessExpression) Elements() []Element {
	return build(e.Expression, e.Operator, e.Name)
}
func (*MemberAccessExpression) exprNode() {}

// Argument is an invocation argument with an optional ref/out modifier.
type Argument struct {
	Modifier   Opt[token.Token]
	Expression Expr
}

func (*Argument) Kind() NodeKind        { return KindArgument }
func (a *Argument) Elements() []Element { return build(a.Modifier, a.Expression) }

// ArgumentList is ( arguments ).
type ArgumentList struct {
	OpenParen  token.Token
	Arguments  SeparatedList[*Argument]
	CloseParen token.Token
}

func (*ArgumentList) Kind() NodeKind { return KindArgumentList }
func (l *ArgumentList) Elements() []Element {
	return build(l.OpenParen, l.Arguments, l.CloseParen)
}

// InvocationExpression is Expression(arguments).
type InvocationExpression struct {
	Expression Expr
	Arguments  *ArgumentList
}

func (*InvocationExpression) Kind() NodeKind { return KindInvocationExpression }
func (e *InvocationExpression) Elements() []Element {
	return build(e.Expression, ptr(e.Arguments))
}
func (*InvocationExpression) exprNode() {}

// ElementAccessExpression is Expression[indexes].
type ElementAccessExpression struct {
	Expression   Expr
	OpenBracket  token.Token
	Indexes      SeparatedList[Expr]
	CloseBracket token.Token
}

func (*ElementAccessExpression) Kind() NodeKind { return KindElementAccessExpression }
func (e *ElementAccessExpression) Elements() []Element {
	return build(e.Expression, e.OpenBracket, e.Indexes, e.CloseBracket)
}
func (*ElementAccessExpression) exprNode() {}

// PrefixUnaryExpression is op Operand, including ++x and --x.
type PrefixUnaryExpression struct {
	Operator token.Token
	Operand  Expr
}

func (*PrefixUnaryExpression) Kind() NodeKind        { return KindPrefixUnaryExpression }
func (e *PrefixUnaryExpression) Elements() []Element { return build(e.Operator, e.Operand) }
func (*PrefixUnaryExpression) exprNode()             {}

// PostfixUnaryExpression is Operand++ or Operand--.
type PostfixUnaryExpression struct {
	Operand  Expr
	Operator token.Token
}

func (*PostfixUnaryExpression) Kind() NodeKind        { return KindPostfixUnaryExpression }
func (e *PostfixUnaryExpression) Elements() []Element { return build(e.Operand, e.Operator) }
func (*PostfixUnaryExpression) exprNode()             {}

// BinaryExpression is Left op Right for arithmetic, logical, relational,
// shift, and bitwise operators.
type BinaryExpression struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*BinaryExpression) Kind() NodeKind        { return KindBinaryExpression }
func (e *BinaryExpression) Elements() []Element { return build(e.Left, e.Operator, e.Right) }
func (*BinaryExpression) exprNode()             {}

// AssignmentExpression is Target op Value for = and the compound forms.
type AssignmentExpression struct {
	Target   Expr
	Operator token.Token
	Value    Expr
}

func (*AssignmentExpression) Kind() NodeKind        { return KindAssignmentExpression }
func (e *AssignmentExpression) Elements() []Element { return build(e.Target, e.Operator, e.Value) }
func (*AssignmentExpression) exprNode()             {}

// ConditionalExpression is Condition ? WhenTrue : WhenFalse.
type ConditionalExpression struct {
	Condition Expr
	Question  token.Token
	WhenTrue  Expr
	Colon     token.Token
	WhenFalse Expr
}

func (*ConditionalExpression) Kind() NodeKind { return KindConditionalExpression }
func (e *ConditionalExpression) Elements() []Element {
	return build(e.Condition, e.Question, e.WhenTrue, e.Colon, e.WhenFalse)
}
func (*ConditionalExpression) exprNode() {}

// IsExpression is Operand is Type.
type IsExpression struct {
	Operand Expr
	Keyword token.Token
	Type    TypeNode
}

func (*IsExpression) Kind() NodeKind        { return KindIsExpression }
func (e *IsExpression) Elements() []Element { return build(e.Operand, e.Keyword, e.Type) }
func (*IsExpression) exprNode()             {}

// AsExpression is Operand as Type.
type AsExpression struct {
	Operand Expr
	Keyword token.Token
	Type    TypeNode
}

func (*AsExpression) Kind() NodeKind        { return KindAsExpression }
func (e *AsExpression) Elements() []Element { return build(e.Operand, e.Keyword, e.Type) }
func (*AsExpression) exprNode()             {}

// CastExpression is (Type)Operand.
type CastExpression struct {
	OpenParen  token.Token
	Type       TypeNode
	CloseParen token.Token
	Operand    Expr
}

func (*CastExpression) Kind() NodeKind { return KindCastExpression }
func (e *CastExpression) Elements() []Element {
	return build(e.OpenParen, e.Type, e.CloseParen, e.Operand)
}
func (*CastExpression) exprNode() {}

// ObjectCreationExpression is new Type(arguments).
type ObjectCreationExpression struct {
	NewKeyword token.Token
	Type       TypeNode
	Arguments  *ArgumentList
}

func (*ObjectCreationExpression) Kind() NodeKind { return KindObjectCreationExpression }
func (e *ObjectCreationExpression) Elements() []Element {
	return build(e.NewKeyword, e.Type, ptr(e.Arguments))
}
func (*ObjectCreationExpression) exprNode() {}

// ArrayCreationExpression is new Type[sizes]... with an optional
// initializer; the array shape lives in Type's rank specifiers.
type ArrayCreationExpression struct {
	NewKeyword  token.Token
	Type        TypeNode
	Initializer *ArrayInitializerExpression
}

func (*ArrayCreationExpression) Kind() NodeKind { return KindArrayCreationExpression }
func (e *ArrayCreationExpression) Elements() []Element {
	return build(e.NewKeyword, e.Type, ptr(e.Initializer))
}
func (*ArrayCreationExpression) exprNode() {}

// ArrayInitializerExpression is { elements }, possibly nested.
type ArrayInitializerExpression struct {
	OpenBrace  token.Token
	Values     SeparatedList[Expr]
	CloseBrace token.Token
}

func (*ArrayInitializerExpression) Kind() NodeKind { return KindArrayInitializerExpression }
func (e *ArrayInitializerExpression) Elements() []Element {
	return build(e.OpenBrace, e.Values, e.CloseBrace)
}
func (*ArrayInitializerExpression) exprNode() {}

// StackAllocExpression is stackalloc Type[size].
type StackAllocExpression struct {
	Keyword token.Token
	Type    TypeNode
}

func (*StackAllocExpression) Kind() NodeKind        { return KindStackAllocExpression }
func (e *StackAllocExpression) Elements() []Element { return build(e.Keyword, e.Type) }
func (*StackAllocExpression) exprNode()             {}

// SizeOfExpression is sizeof(Type).
type SizeOfExpression struct {
	Keyword    token.Token
	OpenParen  token.Token
	Type       TypeNode
	CloseParen token.Token
}

func (*SizeOfExpression) Kind() NodeKind { return KindSizeOfExpression }
func (e *SizeOfExpression) Elements() []Element {
	return build(e.Keyword, e.OpenParen, e.Type, e.CloseParen)
}
func (*SizeOfExpression) exprNode() {}

// TypeOfExpression is typeof(Type).
type TypeOfExpression struct {
	Keyword    token.Token
	OpenParen  token.Token
	Type       TypeNode
	CloseParen token.Token
}

func (*TypeOfExpression) Kind() NodeKind { return KindTypeOfExpression }
func (e *TypeOfExpression) Elements() []Element {
	return build(e.Keyword, e.OpenParen, e.Type, e.CloseParen)
}
func (*TypeOfExpression) exprNode() {}

// CheckedExpression is checked(Expression) or unchecked(Expression).
type CheckedExpression struct {
	Keyword    token.Token
	OpenParen  token.Token
	Expression Expr
	CloseParen token.Token
}

func (*CheckedExpression) Kind() NodeKind { return KindCheckedExpression }
func (e *CheckedExpression) Elements() []Element {
	return build(e.Keyword, e.OpenParen, e.Expression, e.CloseParen)
}
func (*CheckedExpression) exprNode() {}

// ErrorExpression marks a position where an expression was required but
// none could be parsed; it carries no tokens.
type ErrorExpression struct{}

func (*ErrorExpression) Kind() NodeKind      { return KindErrorExpression }
func (*ErrorExpression) Elements() []Element { return nil }
func (*ErrorExpression) exprNode()           {}

// EmptyExpression is a deliberately absent expression slot.
type EmptyExpression struct{}

func (*EmptyExpression) Kind() NodeKind      { return KindEmptyExpression }
func (*EmptyExpression) Elements() []Element { return nil }
func (*EmptyExpression) exprNode()           {}
