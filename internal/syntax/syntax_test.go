package syntax

import (
	"testing"

	"shard/internal/source"
	"shard/internal/token"
)

func tk(kind token.Kind, start uint32, text string) token.Token {
	return token.Token{
		Kind: kind,
		Span: source.Span{Start: start, End: start + uint32(len(text))},
		Text: text,
	}
}

func TestSeparatedListElements(t *testing.T) {
	list := SeparatedList[*VariableDeclarator]{
		Items: []*VariableDeclarator{
			{Identifier: tk(token.Ident, 0, "x")},
			{Identifier: tk(token.Ident, 3, "y")},
		},
		Separators: []token.Token{tk(token.Comma, 1, ",")},
	}
	if !list.WellFormed() {
		t.Fatal("list should be well-formed")
	}
	els := list.listElements()
	if len(els) != 3 {
		t.Fatalf("elements = %d, want 3", len(els))
	}
	if els[0].IsToken() || !els[1].IsToken() || els[2].IsToken() {
		t.Fatal("interleave order wrong")
	}
}

func TestSeparatedListTrailingSeparator(t *testing.T) {
	list := SeparatedList[*EnumMemberDeclaration]{
		Items: []*EnumMemberDeclaration{
			{Identifier: tk(token.Ident, 0, "A")},
		},
		Separators: []token.Token{tk(token.Comma, 1, ",")},
	}
	if !list.WellFormed() {
		t.Fatal("trailing separator is permitted")
	}
	els := list.listElements()
	if len(els) != 2 || !els[1].IsToken() {
		t.Fatalf("elements = %v", els)
	}

	bad := SeparatedList[*EnumMemberDeclaration]{
		Separators: []token.Token{tk(token.Comma, 0, ","), tk(token.Comma, 1, ",")},
		Items:      []*EnumMemberDeclaration{{Identifier: tk(token.Ident, 2, "A")}},
	}
	if bad.WellFormed() {
		t.Fatal("separator surplus must be rejected")
	}
}

func TestOpt(t *testing.T) {
	none := None[token.Token]()
	if none.Present() {
		t.Fatal("None is present")
	}
	some := Some(tk(token.Semicolon, 0, ";"))
	if v, ok := some.Get(); !ok || v.Kind != token.Semicolon {
		t.Fatal("Some lost its value")
	}
}

func TestMemberAccessKindFollowsOperator(t *testing.T) {
	dot := &MemberAccessExpression{
		Expression: &IdentifierExpression{Identifier: tk(token.Ident, 0, "a")},
		Operator:   tk(token.Dot, 1, "."),
		Name:       tk(token.Ident, 2, "b"),
	}
	if dot.Kind() != KindMemberAccessExpression {
		t.Fatalf("dot kind = %v", dot.Kind())
	}
	arrow := &MemberAccessExpression{
		Expression: dot.Expression,
		Operator:   tk(token.Arrow, 1, "->"),
		Name:       tk(token.Ident, 3, "b"),
	}
	if arrow.Kind() != KindPointerMemberAccessExpression {
		t.Fatalf("arrow kind = %v", arrow.Kind())
	}
}

func TestTokensAndText(t *testing.T) {
	// a.b with a leading space on 'a'
	a := tk(token.Ident, 1, "a")
	a.Leading = []token.Trivia{{Kind: token.TriviaWhitespace, Span: source.Span{Start: 0, End: 1}, Text: " "}}
	expr := &MemberAccessExpression{
		Expression: &IdentifierExpression{Identifier: a},
		Operator:   tk(token.Dot, 2, "."),
		Name:       tk(token.Ident, 3, "b"),
	}
	toks := Tokens(expr)
	if len(toks) != 3 {
		t.Fatalf("tokens = %d", len(toks))
	}
	if Text(expr) != " a.b" {
		t.Fatalf("Text = %q", Text(expr))
	}
	first, _ := FirstToken(expr)
	last, _ := LastToken(expr)
	if first.Text != "a" || last.Text != "b" {
		t.Fatalf("first/last = %q/%q", first.Text, last.Text)
	}
}

func TestChildrenSkipTokens(t *testing.T) {
	block := &BlockStatement{
		OpenBrace:  tk(token.LBrace, 0, "{"),
		Statements: []Stmt{&EmptyStatement{Semicolon: tk(token.Semicolon, 1, ";")}},
		CloseBrace: tk(token.RBrace, 2, "}"),
	}
	kids := Children(block)
	if len(kids) != 1 || kids[0].Kind() != KindEmptyStatement {
		t.Fatalf("children = %v", kids)
	}
}

func TestModifierValidity(t *testing.T) {
	cases := []struct {
		kind  DeclarationKind
		env   ModifierEnv
		mod   token.Kind
		valid bool
	}{
		{DeclField, ModifierEnv{}, token.KwStatic, true},
		{DeclField, ModifierEnv{}, token.KwVolatile, true},
		{DeclField, ModifierEnv{IsConst: true}, token.KwStatic, false},
		{DeclField, ModifierEnv{IsConst: true}, token.KwReadonly, false},
		{DeclField, ModifierEnv{IsConst: true}, token.KwPublic, true},
		{DeclField, ModifierEnv{}, token.KwVirtual, false},
		{DeclMethod, ModifierEnv{}, token.KwVirtual, true},
		{DeclMethod, ModifierEnv{}, token.KwSealed, true},
		{DeclMethod, ModifierEnv{}, token.KwVolatile, false},
		{DeclProperty, ModifierEnv{}, token.KwSealed, true},
		{DeclDestructor, ModifierEnv{}, token.KwExtern, true},
		{DeclDestructor, ModifierEnv{}, token.KwPublic, false},
		{DeclOperator, ModifierEnv{}, token.KwPublic, true},
		{DeclOperator, ModifierEnv{}, token.KwStatic, true},
		{DeclOperator, ModifierEnv{}, token.KwVirtual, false},
		{DeclClass, ModifierEnv{InNamespace: true}, token.KwAbstract, true},
		{DeclClass, ModifierEnv{InNamespace: true}, token.KwNew, false},
		{DeclClass, ModifierEnv{}, token.KwNew, true}, // nested class
		{DeclMethod, ModifierEnv{InInterface: true}, token.KwVirtual, false},
		{DeclMethod, ModifierEnv{InInterface: true}, token.KwPublic, true},
		{DeclMethod, ModifierEnv{InInterface: true}, token.KwNew, true},
		{DeclNamespace, ModifierEnv{InNamespace: true}, token.KwPublic, false},
	}
	for _, c := range cases {
		if got := IsModifierValid(c.kind, c.env, c.mod); got != c.valid {
			t.Errorf("IsModifierValid(%v, %+v, %v) = %v, want %v", c.kind, c.env, c.mod, got, c.valid)
		}
	}
}

// Re-running validation over an unchanged modifier list yields identical
// results.
func TestModifierValidityIdempotent(t *testing.T) {
	mods := []token.Kind{token.KwPublic, token.KwStatic, token.KwVirtual}
	first := make([]bool, len(mods))
	for i, m := range mods {
		first[i] = IsModifierValid(DeclMethod, ModifierEnv{}, m)
	}
	for i, m := range mods {
		if IsModifierValid(DeclMethod, ModifierEnv{}, m) != first[i] {
			t.Fatal("validation not idempotent")
		}
	}
}
