package parser_test

import (
	"strings"
	"testing"

	"shard/internal/diag"
	"shard/internal/lexer"
	"shard/internal/parser"
	"shard/internal/source"
	"shard/internal/syntax"
	"shard/internal/token"
)

// parseSource runs the full front-end over src.
func parseSource(t *testing.T, src string) (*syntax.CompilationUnit, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sd", []byte(src))

	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	unit := parser.New(bag, lx.Tokenize()).Parse()
	if unit == nil {
		t.Fatal("Parse returned nil")
	}
	return unit, bag
}

func requireClean(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func hasMessage(bag *diag.Bag, msg string) bool {
	for _, d := range bag.Items() {
		if d.Message == msg {
			return true
		}
	}
	return false
}

func TestHelloWorldShape(t *testing.T) {
	unit, bag := parseSource(t,
		"public class Program { public static void Main() { } }")
	requireClean(t, bag)

	if len(unit.Declarations) != 1 {
		t.Fatalf("declarations = %d", len(unit.Declarations))
	}
	cls, ok := unit.Declarations[0].(*syntax.TypeDeclaration)
	if !ok || cls.Kind() != syntax.KindClassDeclaration {
		t.Fatalf("not a class declaration: %T", unit.Declarations[0])
	}
	if len(cls.Modifiers) != 1 || cls.Modifiers[0].Kind != token.KwPublic {
		t.Fatalf("class modifiers = %v", cls.Modifiers)
	}
	if cls.Identifier.Text != "Program" {
		t.Fatalf("class name = %q", cls.Identifier.Text)
	}

	if len(cls.Members) != 1 {
		t.Fatalf("members = %d", len(cls.Members))
	}
	m, ok := cls.Members[0].(*syntax.MethodDeclaration)
	if !ok {
		t.Fatalf("member is %T", cls.Members[0])
	}
	if m.Identifier.Text != "Main" {
		t.Fatalf("method name = %q", m.Identifier.Text)
	}
	if len(m.Modifiers) != 2 || m.Modifiers[0].Kind != token.KwPublic || m.Modifiers[1].Kind != token.KwStatic {
		t.Fatalf("method modifiers = %v", m.Modifiers)
	}
	ret, ok := m.ReturnType.(*syntax.PredefinedType)
	if !ok || ret.Keyword.Kind != token.KwVoid {
		t.Fatalf("return type = %v", m.ReturnType)
	}
	if m.Parameters.Parameters.Len() != 0 {
		t.Fatalf("parameters = %d", m.Parameters.Parameters.Len())
	}
	if m.Body.Block == nil || len(m.Body.Block.Statements) != 0 {
		t.Fatalf("body = %+v", m.Body)
	}
}

func TestNamespaceWithQualifiedName(t *testing.T) {
	unit, bag := parseSource(t, "namespace A.B { class C {} }")
	requireClean(t, bag)

	ns, ok := unit.Declarations[0].(*syntax.NamespaceDeclaration)
	if !ok {
		t.Fatalf("not a namespace: %T", unit.Declarations[0])
	}
	if strings.TrimSpace(syntax.Text(ns.Name)) != "A.B" {
		t.Fatalf("namespace name = %q", syntax.Text(ns.Name))
	}
	if len(ns.Declarations) != 1 {
		t.Fatalf("namespace members = %d", len(ns.Declarations))
	}
	cls := ns.Declarations[0].(*syntax.TypeDeclaration)
	if cls.Identifier.Text != "C" {
		t.Fatalf("class = %q", cls.Identifier.Text)
	}
}

func TestFieldWithTwoDeclarators(t *testing.T) {
	unit, bag := parseSource(t, "class C { int x = 1, y; }")
	requireClean(t, bag)

	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	field, ok := cls.Members[0].(*syntax.FieldDeclaration)
	if !ok {
		t.Fatalf("member is %T", cls.Members[0])
	}
	if field.Declarators.Len() != 2 || len(field.Declarators.Separators) != 1 {
		t.Fatalf("declarators = %d, separators = %d",
			field.Declarators.Len(), len(field.Declarators.Separators))
	}
	x := field.Declarators.At(0)
	if x.Identifier.Text != "x" || x.Initializer == nil {
		t.Fatalf("x = %+v", x)
	}
	lit, ok := x.Initializer.Value.(*syntax.LiteralExpression)
	if !ok || lit.Literal.Value != int32(1) {
		t.Fatalf("x initializer = %+v", x.Initializer.Value)
	}
	y := field.Declarators.At(1)
	if y.Identifier.Text != "y" || y.Initializer != nil {
		t.Fatalf("y = %+v", y)
	}
}

func TestIfElseStatement(t *testing.T) {
	unit, bag := parseSource(t, "class C { void M() { if (a) b(); else c(); } }")
	requireClean(t, bag)

	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	m := cls.Members[0].(*syntax.MethodDeclaration)
	ifStmt, ok := m.Body.Block.Statements[0].(*syntax.IfStatement)
	if !ok {
		t.Fatalf("statement is %T", m.Body.Block.Statements[0])
	}
	then, ok := ifStmt.Then.(*syntax.ExpressionStatement)
	if !ok {
		t.Fatalf("then is %T", ifStmt.Then)
	}
	if _, ok := then.Expression.(*syntax.InvocationExpression); !ok {
		t.Fatalf("then expression is %T", then.Expression)
	}
	if ifStmt.Else == nil {
		t.Fatal("else clause missing")
	}
	if _, ok := ifStmt.Else.Statement.(*syntax.ExpressionStatement); !ok {
		t.Fatalf("else statement is %T", ifStmt.Else.Statement)
	}
}

func TestTruncatedMemberBecomesIncomplete(t *testing.T) {
	unit, bag := parseSource(t, "class C { int")
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	if len(cls.Members) != 1 {
		t.Fatalf("members = %d", len(cls.Members))
	}
	inc, ok := cls.Members[0].(*syntax.IncompleteMember)
	if !ok {
		t.Fatalf("member is %T", cls.Members[0])
	}
	if inc.Type == nil {
		t.Fatal("incomplete member lost the type prefix")
	}
	if bag.Len() == 0 {
		t.Fatal("expected diagnostics for truncated input")
	}
	if !hasMessage(bag, "} expected") && !hasMessage(bag, "Identifier expected") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestMissingClassName(t *testing.T) {
	unit, bag := parseSource(t, "class { }")
	if !hasMessage(bag, "Identifier expected") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	if !cls.Identifier.Synthesized() {
		t.Fatalf("identifier = %+v", cls.Identifier)
	}
	if len(cls.Members) != 0 {
		t.Fatalf("members = %d", len(cls.Members))
	}
}

func TestEmptySource(t *testing.T) {
	unit, bag := parseSource(t, "")
	requireClean(t, bag)
	if len(unit.Declarations) != 0 || len(unit.Usings) != 0 {
		t.Fatal("empty source must give an empty compilation unit")
	}
	if unit.EOF.Kind != token.EOF || unit.EOF.Span.Start != 0 {
		t.Fatalf("EOF token = %+v", unit.EOF)
	}
}

func TestCommentOnlySource(t *testing.T) {
	unit, bag := parseSource(t, "/* nothing */ // here\n")
	requireClean(t, bag)
	if len(unit.Declarations) != 0 {
		t.Fatal("trivia-only source must give an empty compilation unit")
	}
	if len(unit.EOF.Leading) == 0 {
		t.Fatal("trivia must attach to the EOF token")
	}
}

func TestKeywordSoupSurvives(t *testing.T) {
	unit, bag := parseSource(t, "class struct while if return")
	if unit == nil {
		t.Fatal("parser must always produce a tree")
	}
	if bag.Len() == 0 {
		t.Fatal("keyword soup must produce diagnostics")
	}
}

func TestUsingDirectives(t *testing.T) {
	unit, bag := parseSource(t, "using System; using IO = System.IO;\nclass C {}")
	requireClean(t, bag)
	if len(unit.Usings) != 2 {
		t.Fatalf("usings = %d", len(unit.Usings))
	}
	alias := unit.Usings[1]
	if a, ok := alias.Alias.Get(); !ok || a.Text != "IO" {
		t.Fatalf("alias = %+v", alias.Alias)
	}
	if syntax.Text(alias.Name) != "System.IO" {
		t.Fatalf("alias target = %q", syntax.Text(alias.Name))
	}
}

func TestEnumWithTrailingComma(t *testing.T) {
	unit, bag := parseSource(t, "enum E { A, B = 2, }")
	requireClean(t, bag)
	e := unit.Declarations[0].(*syntax.EnumDeclaration)
	if e.Members.Len() != 2 || len(e.Members.Separators) != 2 {
		t.Fatalf("members = %d, separators = %d", e.Members.Len(), len(e.Members.Separators))
	}
	if !e.Members.WellFormed() {
		t.Fatal("trailing separator must stay well-formed")
	}
	b := e.Members.At(1)
	if b.Initializer == nil {
		t.Fatal("B = 2 lost its initializer")
	}
}

func TestDelegateDeclaration(t *testing.T) {
	unit, bag := parseSource(t, "public delegate int Handler(string name, ref int count);")
	requireClean(t, bag)
	d := unit.Declarations[0].(*syntax.DelegateDeclaration)
	if d.Identifier.Text != "Handler" {
		t.Fatalf("name = %q", d.Identifier.Text)
	}
	if d.Parameters.Parameters.Len() != 2 {
		t.Fatalf("parameters = %d", d.Parameters.Parameters.Len())
	}
	second := d.Parameters.Parameters.At(1)
	if m, ok := second.Modifier.Get(); !ok || m.Kind != token.KwRef {
		t.Fatalf("second parameter modifier = %+v", second.Modifier)
	}
}

func TestPropertyAccessors(t *testing.T) {
	unit, bag := parseSource(t, "class C { int Value { get { return x; } set; } }")
	requireClean(t, bag)
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	prop := cls.Members[0].(*syntax.PropertyDeclaration)
	if len(prop.Accessors) != 2 {
		t.Fatalf("accessors = %d", len(prop.Accessors))
	}
	get, set := prop.Accessors[0], prop.Accessors[1]
	if get.Accessor != syntax.AccessorGet || get.Keyword.Kind != token.KwGet || get.Keyword.Text != "get" {
		t.Fatalf("get = %+v", get)
	}
	if get.Body == nil {
		t.Fatal("get must have a block body")
	}
	if set.Accessor != syntax.AccessorSet || set.Body != nil || !set.Semicolon.Present() {
		t.Fatalf("set = %+v", set)
	}
}

func TestWrongAccessorKeyword(t *testing.T) {
	_, bag := parseSource(t, "class C { int Value { fetch; } }")
	if !hasMessage(bag, "A get or set accessor expected") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestEventForms(t *testing.T) {
	unit, bag := parseSource(t, "class C { event Handler Changed; event Handler Moved { add { } remove { } } }")
	requireClean(t, bag)
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)

	if _, ok := cls.Members[0].(*syntax.EventFieldDeclaration); !ok {
		t.Fatalf("first member is %T", cls.Members[0])
	}
	ev, ok := cls.Members[1].(*syntax.EventDeclaration)
	if !ok {
		t.Fatalf("second member is %T", cls.Members[1])
	}
	if len(ev.Accessors) != 2 ||
		ev.Accessors[0].Accessor != syntax.AccessorAdd ||
		ev.Accessors[1].Accessor != syntax.AccessorRemove {
		t.Fatalf("event accessors = %+v", ev.Accessors)
	}
}

func TestIndexerAndExplicitInterface(t *testing.T) {
	unit, bag := parseSource(t, "class C : IList { object IList.this[int i] { get { return null; } } int IList.Count() { return 0; } }")
	requireClean(t, bag)
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)

	idx, ok := cls.Members[0].(*syntax.IndexerDeclaration)
	if !ok {
		t.Fatalf("first member is %T", cls.Members[0])
	}
	if idx.ExplicitInterface == nil || syntax.Text(idx.ExplicitInterface.Name) != "IList" {
		t.Fatalf("indexer explicit interface = %+v", idx.ExplicitInterface)
	}
	if idx.Parameters.Parameters.Len() != 1 {
		t.Fatalf("indexer parameters = %d", idx.Parameters.Parameters.Len())
	}

	m, ok := cls.Members[1].(*syntax.MethodDeclaration)
	if !ok {
		t.Fatalf("second member is %T", cls.Members[1])
	}
	if m.ExplicitInterface == nil || m.Identifier.Text != "Count" {
		t.Fatalf("method = %+v", m)
	}
}

func TestConstructorDestructorOperators(t *testing.T) {
	src := `class C {
	C(int x) : base(x) { }
	~C() { }
	public static C operator +(C a, C b) { return a; }
	public static implicit operator int(C a) { return 0; }
}`
	unit, bag := parseSource(t, src)
	requireClean(t, bag)
	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	if len(cls.Members) != 4 {
		t.Fatalf("members = %d", len(cls.Members))
	}

	ctor := cls.Members[0].(*syntax.ConstructorDeclaration)
	if ctor.Initializer == nil || ctor.Initializer.Keyword.Kind != token.KwBase {
		t.Fatalf("constructor initializer = %+v", ctor.Initializer)
	}
	if _, ok := cls.Members[1].(*syntax.DestructorDeclaration); !ok {
		t.Fatalf("second member is %T", cls.Members[1])
	}
	op := cls.Members[2].(*syntax.OperatorDeclaration)
	if op.OperatorToken.Kind != token.Plus {
		t.Fatalf("operator token = %v", op.OperatorToken.Kind)
	}
	conv := cls.Members[3].(*syntax.ConversionOperatorDeclaration)
	if conv.ImplicitKeyword.Kind != token.KwImplicit {
		t.Fatalf("conversion keyword = %v", conv.ImplicitKeyword.Kind)
	}
}

func TestAttributes(t *testing.T) {
	src := `[assembly: Company("x")]
[Serializable]
class C {
	[Obsolete("old", true)]
	void M([In] int x) { }
}`
	unit, bag := parseSource(t, src)
	requireClean(t, bag)

	if len(unit.Attributes) != 1 {
		t.Fatalf("global attributes = %d", len(unit.Attributes))
	}
	if target, ok := unit.Attributes[0].Target.Get(); !ok || target.Text != "assembly" {
		t.Fatalf("global target = %+v", unit.Attributes[0].Target)
	}

	cls := unit.Declarations[0].(*syntax.TypeDeclaration)
	if len(cls.Attributes) != 1 {
		t.Fatalf("class attributes = %d", len(cls.Attributes))
	}
	m := cls.Members[0].(*syntax.MethodDeclaration)
	if len(m.Attributes) != 1 {
		t.Fatalf("method attributes = %d", len(m.Attributes))
	}
	param := m.Parameters.Parameters.At(0)
	if len(param.Attributes) != 1 {
		t.Fatalf("parameter attributes = %d", len(param.Attributes))
	}
}

func TestInvalidAttributeTarget(t *testing.T) {
	_, bag := parseSource(t, "class C { [banana: X] void M() { } }")
	if !hasMessage(bag, "'banana' is not a valid attribute target") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestDuplicateAndInvalidModifiers(t *testing.T) {
	_, bag := parseSource(t, "class C { public public int x; virtual int y; }")
	if !hasMessage(bag, "Duplicate 'public' modifier") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	if !hasMessage(bag, "The modifier 'virtual' is not valid for this item") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestConstFieldRejectsStorageModifiers(t *testing.T) {
	_, bag := parseSource(t, "class C { static const int x = 1; }")
	if !hasMessage(bag, "The modifier 'static' is not valid for this item") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestInterfaceMemberModifiers(t *testing.T) {
	_, bag := parseSource(t, "interface I { virtual void M(); }")
	if !hasMessage(bag, "The modifier 'virtual' is not valid for this item") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}

	_, bag = parseSource(t, "interface I { new void M(); void P(); }")
	requireClean(t, bag)
}
