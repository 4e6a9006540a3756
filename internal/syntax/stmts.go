package syntax

import (
	"shard/internal/token"
)

// BlockStatement is { statements }.
type BlockStatement struct {
	OpenBrace  token.Token
	Statements []Stmt
	CloseBrace token.Token
}

func (*BlockStatement) Kind() NodeKind { return KindBlockStatement }
func (s *BlockStatement) Elements() []Element {
	return build(s.OpenBrace, nodes(s.Statements), s.CloseBrace)
}
func (*BlockStatement) stmtNode() {}

// IfStatement is if (Condition) Then with an optional else clause.
type IfStatement struct {
	IfKeyword  token.Token
	OpenParen  token.Token
	Condition  Expr
	CloseParen token.Token
	Then       Stmt
	Else       *ElseClause
}

func (*IfStatement) Kind() NodeKind { return KindIfStatement }
func (s *IfStatement) Elements() []Element {
	return build(s.IfKeyword, s.OpenParen, s.Condition, s.CloseParen, s.Then, ptr(s.Else))
}
func (*IfStatement) stmtNode() {}

// ElseClause is else Statement.
type ElseClause struct {
	ElseKeyword token.Token
	Statement   Stmt
}

func (*ElseClause) Kind() NodeKind        { return KindElseClause }
func (c *ElseClause) Elements() []Element { return build(c.ElseKeyword, c.Statement) }

// SwitchLabel is 'case Expression :' or 'default :'.
type SwitchLabel struct {
	Keyword token.Token
	Value   Expr // nil for default
	Colon   token.Token
}

func (*SwitchLabel) Kind() NodeKind        { return KindSwitchLabel }
func (l *SwitchLabel) Elements() []Element { return build(l.Keyword, l.Value, l.Colon) }

// SwitchSection is one or more labels followed by statements.
type SwitchSection struct {
	Labels     []*SwitchLabel
	Statements []Stmt
}

func (*SwitchSection) Kind() NodeKind { return KindSwitchSection }
func (s *SwitchSection) Elements() []Element {
	return build(nodes(s.Labels), nodes(s.Statements))
}

// SwitchStatement is switch (Value) { sections }.
type SwitchStatement struct {
	SwitchKeyword token.Token
	OpenParen     token.Token
	Value         Expr
	CloseParen    token.Token
	OpenBrace     token.Token
	Sections      []*SwitchSection
	CloseBrace    token.Token
}

func (*SwitchStatement) Kind() NodeKind { return KindSwitchStatement }
func (s *SwitchStatement) Elements() []Element {
	return build(s.SwitchKeyword, s.OpenParen, s.Value, s.CloseParen,
		s.OpenBrace, nodes(s.Sections), s.CloseBrace)
}
func (*SwitchStatement) stmtNode() {}

// VariableDeclaration is Type declarator, declarator, ...
type VariableDeclaration struct {
	Type        TypeNode
	Declarators SeparatedList[*VariableDeclarator]
}

func (*VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (d *VariableDeclaration) Elements() []Element {
	return build(d.Type, d.Declarators)
}

// VariableDeclarationOrExpressionList is the for-initializer (and using
// resource) form: either one declaration or a comma-separated expression
// list, never both.
type VariableDeclarationOrExpressionList struct {
	Declaration *VariableDeclaration
	Expressions SeparatedList[Expr]
}

func (*VariableDeclarationOrExpressionList) Kind() NodeKind {
	return KindVariableDeclarationOrExpressionList
}
func (d *VariableDeclarationOrExpressionList) Elements() []Element {
	if d.Declaration != nil {
		return build(d.Declaration)
	}
	return build(d.Expressions)
}

// ForStatement is for (init; condition; increments) Body.
type ForStatement struct {
	ForKeyword      token.Token
	OpenParen       token.Token
	Initializer     *VariableDeclarationOrExpressionList
	FirstSemicolon  token.Token
	Condition       Expr // nil when omitted
	SecondSemicolon token.Token
	Increments      SeparatedList[Expr]
	CloseParen      token.Token
	Body            Stmt
}

func (*ForStatement) Kind() NodeKind { return KindForStatement }
func (s *ForStatement) Elements() []Element {
	return build(s.ForKeyword, s.OpenParen, ptr(s.Initializer), s.FirstSemicolon,
		s.Condition, s.SecondSemicolon, s.Increments, s.CloseParen, s.Body)
}
func (*ForStatement) stmtNode() {}

// ForeachStatement is foreach (Type name in Collection) Body.
type ForeachStatement struct {
	ForeachKeyword token.Token
	OpenParen      token.Token
	Type           TypeNode
	Identifier     token.Token
	InKeyword      token.Token
	Collection     Expr
	CloseParen     token.Token
	Body           Stmt
}

func (*ForeachStatement) Kind() NodeKind { return KindForeachStatement }
func (s *ForeachStatement) Elements() []Element {
	return build(s.ForeachKeyword, s.OpenParen, s.Type, s.Identifier,
		s.InKeyword, s.Collection, s.CloseParen, s.Body)
}
func (*ForeachStatement) stmtNode() {}

// WhileStatement is while (Condition) Body.
type WhileStatement struct {
	WhileKeyword token.Token
	OpenParen    token.Token
	Condition    Expr
	CloseParen   token.Token
	Body         Stmt
}

func (*WhileStatement) Kind() NodeKind { return KindWhileStatement }
func (s *WhileStatement) Elements() []Element {
	return build(s.WhileKeyword, s.OpenParen, s.Condition, s.CloseParen, s.Body)
}
func (*WhileStatement) stmtNode() {}

// DoStatement is do Body while (Condition);
type DoStatement struct {
	DoKeyword    token.Token
	Body         Stmt
	WhileKeyword token.Token
	OpenParen    token.Token
	Condition    Expr
	CloseParen   token.Token
	Semicolon    token.Token
}

func (*DoStatement) Kind() NodeKind { return KindDoStatement }
func (s *DoStatement) Elements() []Element {
	return build(s.DoKeyword, s.Body, s.WhileKeyword, s.OpenParen,
		s.Condition, s.CloseParen, s.Semicolon)
}
func (*DoStatement) stmtNode() {}

// BreakStatement is break;
type BreakStatement struct {
	Keyword   token.Token
	Semicolon token.Token
}

func (*BreakStatement) Kind() NodeKind        { return KindBreakStatement }
func (s *BreakStatement) Elements() []Element { return build(s.Keyword, s.Semicolon) }
func (*BreakStatement) stmtNode()             {}

// ContinueStatement is continue;
type ContinueStatement struct {
	Keyword   token.Token
	Semicolon token.Token
}

func (*ContinueStatement) Kind() NodeKind        { return KindContinueStatement }
func (s *ContinueStatement) Elements() []Element { return build(s.Keyword, s.Semicolon) }
func (*ContinueStatement) stmtNode()             {}

// GotoStatement covers goto label;, goto case Expression;, goto default;.
type GotoStatement struct {
	GotoKeyword token.Token
	CaseKeyword Opt[token.Token] // 'case' or 'default'
	Target      Expr             // label identifier or case value; nil for default
	Semicolon   token.Token
}

func (*GotoStatement) Kind() NodeKind { return KindGotoStatement }
func (s *GotoStatement) Elements() []Element {
	return build(s.GotoKeyword, s.CaseKeyword, s.Target, s.Semicolon)
}
func (*GotoStatement) stmtNode() {}

// ReturnStatement is return [Expression];
type ReturnStatement struct {
	Keyword    token.Token
	Expression Expr // nil when void
	Semicolon  token.Token
}

func (*ReturnStatement) Kind() NodeKind { return KindReturnStatement }
func (s *ReturnStatement) Elements() []Element {
	return build(s.Keyword, s.Expression, s.Semicolon)
}
func (*ReturnStatement) stmtNode() {}

// ThrowStatement is throw [Expression];
type ThrowStatement struct {
	Keyword    token.Token
	Expression Expr // nil for a rethrow
	Semicolon  token.Token
}

func (*ThrowStatement) Kind() NodeKind { return KindThrowStatement }
func (s *ThrowStatement) Elements() []Element {
	return build(s.Keyword, s.Expression, s.Semicolon)
}
func (*ThrowStatement) stmtNode() {}

// CatchDeclaration is (Type [name]) on a catch clause.
type CatchDeclaration struct {
	OpenParen  token.Token
	Type       TypeNode
	Identifier Opt[token.Token]
	CloseParen token.Token
}

func (*CatchDeclaration) Kind() NodeKind { return KindCatchDeclaration }
func (d *CatchDeclaration) Elements() []Element {
	return build(d.OpenParen, d.Type, d.Identifier, d.CloseParen)
}

// CatchClause is catch [(Type name)] Block.
type CatchClause struct {
	Keyword     token.Token
	Declaration *CatchDeclaration
	Block       *BlockStatement
}

func (*CatchClause) Kind() NodeKind { return KindCatchClause }
func (c *CatchClause) Elements() []Element {
	return build(c.Keyword, ptr(c.Declaration), ptr(c.Block))
}

// FinallyClause is finally Block.
type FinallyClause struct {
	Keyword token.Token
	Block   *BlockStatement
}

func (*FinallyClause) Kind() NodeKind        { return KindFinallyClause }
func (c *FinallyClause) Elements() []Element { return build(c.Keyword, ptr(c.Block)) }

// TryStatement is try Block catches... [finally].
type TryStatement struct {
	TryKeyword token.Token
	Block      *BlockStatement
	Catches    []*CatchClause
	Finally    *FinallyClause
}

func (*TryStatement) Kind() NodeKind { return KindTryStatement }
func (s *TryStatement) Elements() []Element {
	return build(s.TryKeyword, ptr(s.Block), nodes(s.Catches), ptr(s.Finally))
}
func (*TryStatement) stmtNode() {}

// CheckedStatement is checked Block or unchecked Block.
type CheckedStatement struct {
	Keyword token.Token
	Block   *BlockStatement
}

func (*CheckedStatement) Kind() NodeKind        { return KindCheckedStatement }
func (s *CheckedStatement) Elements() []Element { return build(s.Keyword, ptr(s.Block)) }
func (*CheckedStatement) stmtNode()             {}

// LockStatement is lock (Expression) Body.
type LockStatement struct {
	Keyword    token.Token
	OpenParen  token.Token
	Expression Expr
	CloseParen token.Token
	Body       Stmt
}

func (*LockStatement) Kind() NodeKind { return KindLockStatement }
func (s *LockStatement) Elements() []Element {
	return build(s.Keyword, s.OpenParen, s.Expression, s.CloseParen, s.Body)
}
func (*LockStatement) stmtNode() {}

// UsingStatement is using (resource) Body.
type UsingStatement struct {
	Keyword    token.Token
	OpenParen  token.Token
	Resource   *VariableDeclarationOrExpressionList
	CloseParen token.Token
	Body       Stmt
}

func (*UsingStatement) Kind() NodeKind { return KindUsingStatement }
func (s *UsingStatement) Elements() []Element {
	return build(s.Keyword, s.OpenParen, ptr(s.Resource), s.CloseParen, s.Body)
}
func (*UsingStatement) stmtNode() {}

// FixedStatement is fixed (Type decls) Body.
type FixedStatement struct {
	Keyword     token.Token
	OpenParen   token.Token
	Declaration *VariableDeclaration
	CloseParen  token.Token
	Body        Stmt
}

func (*FixedStatement) Kind() NodeKind { return KindFixedStatement }
func (s *FixedStatement) Elements() []Element {
	return build(s.Keyword, s.OpenParen, ptr(s.Declaration), s.CloseParen, s.Body)
}
func (*FixedStatement) stmtNode() {}

// UnsafeStatement is unsafe Block.
type UnsafeStatement struct {
	Keyword token.Token
	Block   *BlockStatement
}

func (*UnsafeStatement) Kind() NodeKind        { return KindUnsafeStatement }
func (s *UnsafeStatement) Elements() []Element { return build(s.Keyword, ptr(s.Block)) }
func (*UnsafeStatement) stmtNode()             {}

// LabeledStatement is label: Statement.
type LabeledStatement struct {
	Label     token.Token
	Colon     token.Token
	Statement Stmt
}

func (*LabeledStatement) Kind() NodeKind { return KindLabeledStatement }
func (s *LabeledStatement) Elements() []Element {
	return build(s.Label, s.Colon, s.Statement)
}
func (*LabeledStatement) stmtNode() {}

// DeclarationStatement is a local variable (or constant) declaration.
type DeclarationStatement struct {
	ConstKeyword Opt[token.Token]
	Declaration  *VariableDeclaration
	Semicolon    token.Token
}

func (*DeclarationStatement) Kind() NodeKind { return KindDeclarationStatement }
func (s *DeclarationStatement) Elements() []Element {
	return build(s.ConstKeyword, ptr(s.Declaration), s.Semicolon)
}
func (*DeclarationStatement) stmtNode() {}

// ExpressionStatement is Expression;
type ExpressionStatement struct {
	Expression Expr
	Semicolon  token.Token
}

func (*ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (s *ExpressionStatement) Elements() []Element {
	return build(s.Expression, s.Semicolon)
}
func (*ExpressionStatement) stmtNode() {}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	Semicolon token.Token
}

func (*EmptyStatement) Kind() NodeKind        { return KindEmptyStatement }
func (s *EmptyStatement) Elements() []Element { return build(s.Semicolon) }
func (*EmptyStatement) stmtNode()             {}
