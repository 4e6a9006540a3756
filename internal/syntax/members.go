package syntax

import (
	"shard/internal/token"
)

// FieldDeclaration is [const] Type declarators ;
type FieldDeclaration struct {
	Attributes   []*AttributeSection
	Modifiers    TokenList
	ConstKeyword Opt[token.Token]
	Type         TypeNode
	Declarators  SeparatedList[*VariableDeclarator]
	Semicolon    token.Token
}

func (*FieldDeclaration) Kind() NodeKind { return KindFieldDeclaration }
func (d *FieldDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.ConstKeyword, d.Type,
		d.Declarators, d.Semicolon)
}
func (*FieldDeclaration) DeclKind() DeclarationKind { return DeclField }

// EventFieldDeclaration is event Type declarators ;
type EventFieldDeclaration struct {
	Attributes   []*AttributeSection
	Modifiers    TokenList
	EventKeyword token.Token
	Type         TypeNode
	Declarators  SeparatedList[*VariableDeclarator]
	Semicolon    token.Token
}

func (*EventFieldDeclaration) Kind() NodeKind { return KindEventFieldDeclaration }
func (d *EventFieldDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.EventKeyword, d.Type,
		d.Declarators, d.Semicolon)
}
func (*EventFieldDeclaration) DeclKind() DeclarationKind { return DeclEventField }

// EventDeclaration is event Type [Iface.]Name { add/remove accessors }.
type EventDeclaration struct {
	Attributes        []*AttributeSection
	Modifiers         TokenList
	EventKeyword      token.Token
	Type              TypeNode
	ExplicitInterface *ExplicitInterface
	Identifier        token.Token
	OpenBrace         token.Token
	Accessors         []*AccessorDeclaration
	CloseBrace        token.Token
}

func (*EventDeclaration) Kind() NodeKind { return KindEventDeclaration }
func (d *EventDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.EventKeyword, d.Type,
		ptr(d.ExplicitInterface), d.Identifier, d.OpenBrace, nodes(d.Accessors), d.CloseBrace)
}
func (*EventDeclaration) DeclKind() DeclarationKind { return DeclEvent }

// PropertyDeclaration is Type [Iface.]Name { get/set accessors }.
type PropertyDeclaration struct {
	Attributes        []*AttributeSection
	Modifiers         TokenList
	Type              TypeNode
	ExplicitInterface *ExplicitInterface
	Identifier        token.Token
	OpenBrace         token.Token
	Accessors         []*AccessorDeclaration
	CloseBrace        token.Token
}

func (*PropertyDeclaration) Kind() NodeKind { return KindPropertyDeclaration }
func (d *PropertyDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Type, ptr(d.ExplicitInterface),
		d.Identifier, d.OpenBrace, nodes(d.Accessors), d.CloseBrace)
}
func (*PropertyDeclaration) DeclKind() DeclarationKind { return DeclProperty }

// IndexerDeclaration is Type [Iface.]this[parameters] { accessors }.
type IndexerDeclaration struct {
	Attributes        []*AttributeSection
	Modifiers         TokenList
	Type              TypeNode
	ExplicitInterface *ExplicitInterface
	ThisKeyword       token.Token
	Parameters        *ParameterList
	OpenBrace         token.Token
	Accessors         []*AccessorDeclaration
	CloseBrace        token.Token
}

func (*IndexerDeclaration) Kind() NodeKind { return KindIndexerDeclaration }
func (d *IndexerDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Type, ptr(d.ExplicitInterface),
		d.ThisKeyword, ptr(d.Parameters), d.OpenBrace, nodes(d.Accessors), d.CloseBrace)
}
func (*IndexerDeclaration) DeclKind() DeclarationKind { return DeclIndexer }

// AccessorKind distinguishes the reclassified accessor keyword.
type AccessorKind uint8

const (
	AccessorIncomplete AccessorKind = iota
	AccessorGet
	AccessorSet
	AccessorAdd
	AccessorRemove
)

// AccessorDeclaration is [attributes] [modifiers] get|set|add|remove
// followed by a block body or ';'. A wrong or missing keyword yields an
// incomplete accessor.
type AccessorDeclaration struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Accessor   AccessorKind
	Keyword    token.Token
	Body       *BlockStatement
	Semicolon  Opt[token.Token]
}

func (*AccessorDeclaration) Kind() NodeKind { return KindAccessorDeclaration }
func (d *AccessorDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Keyword, ptr(d.Body), d.Semicolon)
}

// MethodBody is a block or a terminating semicolon (abstract, extern,
// interface members).
type MethodBody struct {
	Block     *BlockStatement
	Semicolon Opt[token.Token]
}

func (b MethodBody) elements() []Element {
	return build(ptr(b.Block), b.Semicolon)
}

// MethodDeclaration is ReturnType [Iface.]Name(parameters) Body.
type MethodDeclaration struct {
	Attributes        []*AttributeSection
	Modifiers         TokenList
	ReturnType        TypeNode
	ExplicitInterface *ExplicitInterface
	Identifier        token.Token
	Parameters        *ParameterList
	Body              MethodBody
}

func (*MethodDeclaration) Kind() NodeKind { return KindMethodDeclaration }
func (d *MethodDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.ReturnType,
		ptr(d.ExplicitInterface), d.Identifier, ptr(d.Parameters), d.Body.elements())
}
func (*MethodDeclaration) DeclKind() DeclarationKind { return DeclMethod }

// ConstructorInitializer is : base(args) or : this(args).
type ConstructorInitializer struct {
	Colon     token.Token
	Keyword   token.Token // 'base' or 'this'
	Arguments *ArgumentList
}

func (*ConstructorInitializer) Kind() NodeKind { return KindConstructorInitializer }
func (i *ConstructorInitializer) Elements() []Element {
	return build(i.Colon, i.Keyword, ptr(i.Arguments))
}

// ConstructorDeclaration is Name(parameters) [: base/this(...)] Body.
type ConstructorDeclaration struct {
	Attributes  []*AttributeSection
	Modifiers   TokenList
	Identifier  token.Token
	Parameters  *ParameterList
	Initializer *ConstructorInitializer
	Body        MethodBody
}

func (*ConstructorDeclaration) Kind() NodeKind { return KindConstructorDeclaration }
func (d *ConstructorDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Identifier, ptr(d.Parameters),
		ptr(d.Initializer), d.Body.elements())
}
func (*ConstructorDeclaration) DeclKind() DeclarationKind { return DeclConstructor }

// DestructorDeclaration is ~Name() Body.
type DestructorDeclaration struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Tilde      token.Token
	Identifier token.Token
	Parameters *ParameterList
	Body       MethodBody
}

func (*DestructorDeclaration) Kind() NodeKind { return KindDestructorDeclaration }
func (d *DestructorDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Tilde, d.Identifier,
		ptr(d.Parameters), d.Body.elements())
}
func (*DestructorDeclaration) DeclKind() DeclarationKind { return DeclDestructor }

// OperatorDeclaration is ReturnType operator op (parameters) Body.
type OperatorDeclaration struct {
	Attributes      []*AttributeSection
	Modifiers       TokenList
	ReturnType      TypeNode
	OperatorKeyword token.Token
	OperatorToken   token.Token
	Parameters      *ParameterList
	Body            MethodBody
}

func (*OperatorDeclaration) Kind() NodeKind { return KindOperatorDeclaration }
func (d *OperatorDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.ReturnType, d.OperatorKeyword,
		d.OperatorToken, ptr(d.Parameters), d.Body.elements())
}
func (*OperatorDeclaration) DeclKind() DeclarationKind { return DeclOperator }

// ConversionOperatorDeclaration is implicit|explicit operator Type (parameters) Body.
type ConversionOperatorDeclaration struct {
	Attributes      []*AttributeSection
	Modifiers       TokenList
	ImplicitKeyword token.Token // 'implicit' or 'explicit'
	OperatorKeyword token.Token
	Type            TypeNode
	Parameters      *ParameterList
	Body            MethodBody
}

func (*ConversionOperatorDeclaration) Kind() NodeKind { return KindConversionOperatorDeclaration }
func (d *ConversionOperatorDeclaration) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.ImplicitKeyword,
		d.OperatorKeyword, d.Type, ptr(d.Parameters), d.Body.elements())
}
func (*ConversionOperatorDeclaration) DeclKind() DeclarationKind { return DeclConversionOperator }

// IncompleteMember carries whatever was consumed before the parser gave
// up on a member: attributes, modifiers, and an optional type prefix.
type IncompleteMember struct {
	Attributes []*AttributeSection
	Modifiers  TokenList
	Type       TypeNode // may be nil
}

func (*IncompleteMember) Kind() NodeKind { return KindIncompleteMember }
func (d *IncompleteMember) Elements() []Element {
	return build(nodes(d.Attributes), d.Modifiers, d.Type)
}
func (*IncompleteMember) DeclKind() DeclarationKind { return DeclIncomplete }
