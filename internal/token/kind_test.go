package token

import "testing"

func TestKeywordRegionIsContiguous(t *testing.T) {
	for text, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("keyword %q (kind %d) outside keyword region", text, k)
		}
	}
	for _, k := range []Kind{Unknown, EOF, Ident, NumberLit, StringLit, CharLit,
		Directive, Plus, Semicolon, RBracket} {
		if k.IsKeyword() {
			t.Errorf("kind %d wrongly classified as keyword", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("class"); !ok || k != KwClass {
		t.Fatalf("LookupKeyword(class) = %v, %v", k, ok)
	}
	// contextual words stay identifiers
	for _, w := range []string{"get", "set", "add", "remove", "assembly", "value", "Class"} {
		if _, ok := LookupKeyword(w); ok {
			t.Errorf("%q must not be a keyword", w)
		}
	}
}

func TestKindText(t *testing.T) {
	cases := map[Kind]string{
		KwNamespace: "namespace",
		ShlAssign:   "<<=",
		Arrow:       "->",
		Semicolon:   ";",
	}
	for k, want := range cases {
		if got := KindText(k); got != want {
			t.Errorf("KindText(%d) = %q, want %q", k, got, want)
		}
	}
	if KindText(Ident) != "" {
		t.Error("Ident has no fixed spelling")
	}
}

func TestPredefinedTypeSet(t *testing.T) {
	for _, k := range []Kind{KwInt, KwVoid, KwString, KwObject, KwDecimal} {
		if !k.IsPredefinedType() {
			t.Errorf("%v should be a predefined type", k)
		}
	}
	if KwClass.IsPredefinedType() || Ident.IsPredefinedType() {
		t.Error("non-type kinds classified as predefined types")
	}
}
