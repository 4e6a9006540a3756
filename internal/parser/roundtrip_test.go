package parser_test

import (
	"strings"
	"testing"

	"shard/internal/syntax"
	"shard/internal/token"
)

// seeds cover every construct family; the error seeds at the bottom
// exercise recovery.
var seeds = []string{
	"",
	"using System;\nnamespace A.B { public class C : D, E { } }",
	"public class Program { public static void Main() { } }",
	"class C { int x = 1, y; const string S = \"s\"; }",
	"class C { int[] a; int[,] b; int* p; A.B.C q; }",
	"struct S { public int X; }\ninterface I { void M(); int P { get; set; } }",
	"enum E : byte { A, B = 2, }",
	"public delegate void Handler(object sender, EventArgs e);",
	`class C {
	void M(ref int a, out int b, params int[] rest) {
		for (int i = 0, j = 1; i < 10; i++, j--) { continue; }
		foreach (string s in names) { break; }
		while (a > 0) a--;
		do { a++; } while (a < 5);
		switch (a) { case 1: case 2: return; default: break; }
		try { throw new Exception("x"); } catch (Exception e) { } catch { } finally { }
		lock (this) { }
		using (Stream s = Open()) { }
		fixed (int* p = arr) { }
		unsafe { p->next = null; }
		checked { a = a + 1; }
		a = unchecked(a * 2);
		goto done;
	done:
		;
	}
}`,
	`class C {
	object this[int i] { get { return items[i]; } set { items[i] = value; } }
	event Handler Changed;
	event Handler Moved { add { } remove { } }
	~C() { }
	public static C operator -(C a) { return a; }
	public static explicit operator int(C a) { return 0; }
}`,
	`class C {
	void M() {
		int x = (int)y;
		object o = (Name)(z);
		var2 = a is B ? c as D : e;
		v = new int[3] { 1, 2, 3 };
		w = new C(1, 2).Field.Method()[0]++;
		u = -!~*&x + sizeof(int) - typeof(C).Name;
		s = a << 2 >> 1 | b & c ^ d && e || f;
		t = stackalloc int[16];
	}
}`,
	"[assembly: Version(\"1.0\")]\n[Serializable] class C { [Obsolete] void M([In] int x) { } }",
	"#define DEBUG\nclass C {\n#if DEBUG\n int x;\n#endif\n}",
	// error recovery seeds
	"class C { int",
	"class { }",
	"class C { ??? int x; }",
	"namespace N { $$$ class C {} }",
	"class C { void M( { } }",
	"class struct while if return",
	"interface I { virtual void M(); }",
	"class C { int Value { fetch; } }",
}

// Parser round-trip: the tree's tokens reproduce the source exactly,
// valid or not.
func TestTreeRoundTrip(t *testing.T) {
	for _, src := range seeds {
		unit, _ := parseSource(t, src)
		var sb strings.Builder
		for _, tk := range syntax.Tokens(unit) {
			sb.WriteString(tk.FullText())
		}
		if sb.String() != src {
			t.Errorf("round trip failed:\n in: %q\nout: %q", src, sb.String())
		}
	}
}

// A clean parse carries no synthesized tokens and no skipped-token
// trivia anywhere in the tree.
func TestCleanParseHasNoRecoveryArtifacts(t *testing.T) {
	for _, src := range seeds {
		unit, bag := parseSource(t, src)
		if bag.Len() != 0 {
			continue // recovery seeds
		}
		if strings.Contains(src, "#") {
			continue // directives ride along as skipped-token trivia
		}
		for _, tk := range syntax.Tokens(unit) {
			if tk.Synthesized() {
				t.Errorf("%q: synthesized %v token in clean parse", src, tk.Kind)
			}
			for _, tr := range append(append([]token.Trivia{}, tk.Leading...), tk.Trailing...) {
				if tr.Kind == token.TriviaSkippedToken {
					t.Errorf("%q: skipped-token trivia in clean parse", src)
				}
			}
		}
	}
}

// Every parse ends in exactly one EOF token.
func TestSingleTerminatingEOF(t *testing.T) {
	for _, src := range seeds {
		unit, _ := parseSource(t, src)
		toks := syntax.Tokens(unit)
		if len(toks) == 0 {
			t.Fatalf("%q: empty token list", src)
		}
		eofs := 0
		for _, tk := range toks {
			if tk.Kind == token.EOF {
				eofs++
			}
		}
		if eofs != 1 || toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("%q: EOF count = %d, last = %v", src, eofs, toks[len(toks)-1].Kind)
		}
	}
}

// All separated lists in every tree obey the separator-count relation.
func TestSeparatedListInvariant(t *testing.T) {
	for _, src := range seeds {
		unit, _ := parseSource(t, src)
		syntax.Walk(unit, func(n syntax.Node) bool {
			switch v := n.(type) {
			case *syntax.EnumDeclaration:
				if !v.Members.WellFormed() {
					t.Errorf("%q: enum member list malformed", src)
				}
			case *syntax.FieldDeclaration:
				if !v.Declarators.WellFormed() {
					t.Errorf("%q: declarator list malformed", src)
				}
			case *syntax.ParameterList:
				if !v.Parameters.WellFormed() {
					t.Errorf("%q: parameter list malformed", src)
				}
			case *syntax.ArgumentList:
				if !v.Arguments.WellFormed() {
					t.Errorf("%q: argument list malformed", src)
				}
			case *syntax.ArrayInitializerExpression:
				if !v.Values.WellFormed() {
					t.Errorf("%q: initializer list malformed", src)
				}
			}
			return true
		})
	}
}

// The parser must terminate and produce a tree for adversarial inputs.
func TestParserNeverPanics(t *testing.T) {
	inputs := []string{
		strings.Repeat("{", 50),
		strings.Repeat("(", 50),
		strings.Repeat("class C {", 20),
		"class C { void M() { if (",
		"\"unterminated\nclass C {}",
		"/* unterminated",
		strings.Repeat("$", 100),
		"class C { int x = ; }",
		"namespace { namespace { } }",
	}
	for _, src := range inputs {
		unit, _ := parseSource(t, src)
		if unit == nil {
			t.Fatalf("%q: nil tree", src)
		}
	}
}
