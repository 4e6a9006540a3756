package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shard/internal/source"
	"shard/internal/syntax"
)

func TestParseSourceClean(t *testing.T) {
	fs := source.NewFileSet()
	r := ParseSource(fs, "main.sd", []byte("class C { void M() { } }"), Options{})
	if r.Bag.Len() != 0 {
		t.Fatalf("diagnostics = %v", r.Bag.Items())
	}
	if len(r.Unit.Declarations) != 1 {
		t.Fatalf("declarations = %d", len(r.Unit.Declarations))
	}
}

func TestParseSourceBroken(t *testing.T) {
	fs := source.NewFileSet()
	r := ParseSource(fs, "main.sd", []byte("class {"), Options{})
	if !r.Bag.HasErrors() {
		t.Fatal("expected errors")
	}
	if r.Unit == nil {
		t.Fatal("tree must exist even for broken input")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.sd":        "class A { }",
		"b.sd":        "class B { int x = }", // broken
		"sub/c.sd":    "namespace N { class C { } }",
		"ignored.txt": "not a source file",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fs := source.NewFileSet()
	results, err := ParseDir(context.Background(), fs, dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// deterministic path order
	if filepath.Base(results[0].Path) != "a.sd" || filepath.Base(results[2].Path) != "c.sd" {
		t.Fatalf("order = %v, %v, %v", results[0].Path, results[1].Path, results[2].Path)
	}
	if results[1].Bag.Len() == 0 {
		t.Fatal("b.sd should carry diagnostics")
	}
	if results[0].Bag.Len() != 0 || results[2].Bag.Len() != 0 {
		t.Fatal("clean files must stay clean")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	r := ParseSource(fs, "main.sd", []byte("class C { int"), Options{})
	file := fs.Get(r.FileID)

	payload := Summarize(fs, r)
	if !payload.Broken || len(payload.Diagnostics) == 0 {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.TokenCount != len(syntax.Tokens(r.Unit)) {
		t.Fatalf("token count = %d", payload.TokenCount)
	}

	if err := cache.Store(file.Hash, payload); err != nil {
		t.Fatal(err)
	}
	loaded, ok, err := cache.Load(file.Hash)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if loaded.Path != payload.Path || len(loaded.Diagnostics) != len(payload.Diagnostics) {
		t.Fatalf("loaded = %+v", loaded)
	}

	bag := Restore(loaded, r.FileID)
	if bag.Len() != r.Bag.Len() {
		t.Fatalf("restored %d diagnostics, want %d", bag.Len(), r.Bag.Len())
	}
	for i, d := range bag.Items() {
		orig := r.Bag.Items()[i]
		if d.Message != orig.Message || d.Primary.Start != orig.Primary.Start {
			t.Fatalf("diagnostic %d = %+v, want %+v", i, d, orig)
		}
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var key Digest
	key[0] = 0xAB
	if _, ok, err := cache.Load(key); err != nil || ok {
		t.Fatalf("miss = %v, %v", ok, err)
	}
}
