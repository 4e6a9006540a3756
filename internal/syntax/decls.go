package syntax

import (
	"shard/internal/token"
)

// CompilationUnit is the tree root: usings, global attribute sections,
// top-level declarations, and the terminating EOF token.
type CompilationUnit struct {
	Usings       []*UsingDirective
	Attributes   []*AttributeSection
	Declarations []Member
	EOF          token.Token
}

func (*CompilationUnit) Kind() NodeKind { return KindCompilationUnit }
func (u *CompilationUnit) Elements() []Element {
	return build(nodes(u.Usings), nodes(u.Attributes), nodes(u.Declarations), u.EOF)
}

// UsingDirective is using [alias =] QualifiedName ;
type UsingDirective struct {
	UsingKeyword token.Token
	Alias        Opt[token.Token]
	Equals       Opt[token.Token]
	Name         TypeNode
	Semicolon    token.Token
}

func (*UsingDirective) Kind() NodeKind { return KindUsingDirective }
func (d *UsingDirective) Elements() []Element {
	return build(d.UsingKeyword, d.Alias, d.Equals, d.Name, d.Semicolon)
}

// AttributeSection is [target: Attr, Attr, ...].
type AttributeSection struct {
	OpenBracket  token.Token
	Target       Opt[token.Token]
	Colon        Opt[token.Token]
	Attributes   SeparatedList[*Attribute]
	CloseBracket token.Token
}

func (*AttributeSection) Kind() NodeKind { return KindAttributeSection }
func (s *AttributeSection) Elements() []Element {
	return build(s.OpenBracket, s.Target, s.Colon, s.Attributes, s.CloseBracket)
}

// Attribute is a qualified name with an optional argument list.
type Attribute struct {
	Name      TypeNode
	Arguments *AttributeArgumentList
}

func (*Attribute) Kind() NodeKind        { return KindAttribute }
func (a *Attribute) Elements() []Element { return build(a.Name, ptr(a.Arguments)) }

// AttributeArgumentList is ( expressions ).
type AttributeArgumentList struct {
	OpenParen  token.Token
	Arguments  SeparatedList[Expr]
	CloseParen token.Token
}

func (*AttributeArgumentList) Kind() NodeKind { return KindAttributeArgumentList }
func (l *AttributeArgumentList) Elements() []Element {
	return build(l.OpenParen, l.Arguments, l.CloseParen)
}

// NamespaceDeclaration is namespace QualifiedName { usings declarations } [;]
type NamespaceDeclaration struct {
	Keyword      token.Token
	Name         TypeNode
	OpenBrace    token.Token
	Usings       []*UsingDirective
	Declarations []Member
	CloseBrace   token.Token
	Semicolon    Opt[token.Token]
}

func (*NamespaceDeclaration) Kind() NodeKind { return KindNamespaceDeclaration }
func (d *NamespaceDeclaration) Elements() []Element {
	return build(d.Keyword, d.Name, d.OpenBrace, nodes(d.Usings),
		nodes(d.Declarations), d.CloseBrace, d.Semicolon)
}
func (*NamespaceDeclaration) DeclKind() DeclarationKind { return DeclNamespace }

// BaseList is : T1, T2, ...
type BaseList struct {
	Colon token.Token
	Types SeparatedList[TypeNode]
}

func (*BaseList) Kind() NodeKind        { return KindBaseList }
func (l *BaseList) Elements() []Element { return build(l.Colon, l.Types) }

// TypeDeclaration is a class, struct, or interface declaration; the
// keyword token decides which.
type TypeDeclaration struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Keyword    token.Token
	Identifier token.Token
	Bases      *BaseList
	OpenBrace  token.Token
	Members    []Member
	CloseBrace token.Token
	Semicolon  Opt[token.Token]
}

func (d *TypeDeclaration) Kind() NodeKind {
	switch d.Keyword.Kind {
	case token.KwStruct:
		return KindStructDeclaration
	case token.KwInterface:
		return KindInterfaceDeclaration
	default:
		return KindClassDeclaration
	}
}

func (d *TypeDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Keyword, d.Identifier,
		ptr(d.Bases), d.OpenBrace, nodes(d.Members), d.CloseBrace, d.Semicolon)
}

func (d *TypeDeclaration) DeclKind() DeclarationKind {
	switch d.Keyword.Kind {
	case token.KwStruct:
		return DeclStruct
	case token.KwInterface:
		return DeclInterface
	default:
		return DeclClass
	}
}

// EnumDeclaration is enum Name [: Base] { members[,] } [;]
type EnumDeclaration struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Keyword    token.Token
	Identifier token.Token
	Bases      *BaseList
	OpenBrace  token.Token
	Members    SeparatedList[*EnumMemberDeclaration]
	CloseBrace token.Token
	Semicolon  Opt[token.Token]
}

func (*EnumDeclaration) Kind() NodeKind { return KindEnumDeclaration }
func (d *EnumDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Keyword, d.Identifier,
		ptr(d.Bases), d.OpenBrace, d.Members, d.CloseBrace, d.Semicolon)
}
func (*EnumDeclaration) DeclKind() DeclarationKind { return DeclEnum }

// EnumMemberDeclaration is Name [= Value].
type EnumMemberDeclaration struct {
	Attributes  []*AttributeSection
	Identifier  token.Token
	Initializer *EqualsValueClause
}

func (*EnumMemberDeclaration) Kind() NodeKind { return KindEnumMemberDeclaration }
func (d *EnumMemberDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Identifier, ptr(d.Initializer))
}
func (*EnumMemberDeclaration) DeclKind() DeclarationKind { return DeclEnumMember }

// DelegateDeclaration is delegate ReturnType Name(parameters);
type DelegateDeclaration struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Keyword    token.Token
	ReturnType TypeNode
	Identifier token.Token
	Parameters *ParameterList
	Semicolon  token.Token
}

func (*DelegateDeclaration) Kind() NodeKind { return KindDelegateDeclaration }
func (d *DelegateDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Keyword, d.ReturnType,
		d.Identifier, ptr(d.Parameters), d.Semicolon)
}
func (*DelegateDeclaration) DeclKind() DeclarationKind { return DeclDelegate }

// ParameterList is ( parameters ) or [ parameters ] for indexers.
type ParameterList struct {
	Open       token.Token
	Parameters SeparatedList[*Parameter]
	Close      token.Token
}

func (*ParameterList) Kind() NodeKind { return KindParameterList }
func (l *ParameterList) Elements() []Element {
	return build(l.Open, l.Parameters, l.Close)
}

// Parameter is [attributes] [ref|out|params] Type name.
type Parameter struct {
	Attributes []*AttributeSection
	Modifier   Opt[token.Token]
	Type       TypeNode
	Identifier token.Token
}

func (*Parameter) Kind() NodeKind { return KindParameter }
func (p *Parameter) Elements() []Element {
	return build(nodes(p.Attributes), p.Modifier, p.Type, p.Identifier)
}

// EqualsValueClause is = Expression.
type EqualsValueClause struct {
	Equals token.Token
	Value  Expr
}

func (*EqualsValueClause) Kind() NodeKind        { return KindEqualsValueClause }
func (c *EqualsValueClause) Elements() []Element { return build(c.Equals, c.Value) }

// VariableDeclarator is Name [= Value].
type VariableDeclarator struct {
	Identifier  token.Token
	Initializer *EqualsValueClause
}

func (*VariableDeclarator) Kind() NodeKind { return KindVariableDeclarator }
func (d *VariableDeclarator) Elements() []Element {
	return build(d.Identifier, ptr(d.Initializer))
}

// ExplicitInterface is the dotted prefix of an explicitly implemented
// member name, including the final dot.
type ExplicitInterface struct {
	Name TypeNode
	Dot  token.Token
}

func (*ExplicitInterface) Kind() NodeKind        { return KindExplicitInterface }
func (e *ExplicitInterface) Elements() []Element { return build(e.Name, e.Dot) }
