package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "demo"
sources = ["src", "tests"]

[frontend]
max_errors = 50
tab_width = 8
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Project.Name != "demo" {
		t.Fatalf("name = %q", m.Project.Name)
	}
	if len(m.Project.Sources) != 2 || m.Project.Sources[1] != "tests" {
		t.Fatalf("sources = %v", m.Project.Sources)
	}
	if m.Frontend.MaxErrors != 50 || m.Frontend.TabWidth != 8 {
		t.Fatalf("frontend = %+v", m.Frontend)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "demo"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Frontend.MaxErrors != DefaultMaxErrors || m.Frontend.TabWidth != DefaultTabWidth {
		t.Fatalf("defaults not applied: %+v", m.Frontend)
	}
	if len(m.Project.Sources) != 1 || m.Project.Sources[0] != "." {
		t.Fatalf("sources = %v", m.Project.Sources)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[frontend]\nmax_errors = 10\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected an error for a nameless project")
	}
}

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[project]\nname = \"x\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok, err := FindRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindRoot = %v, %v", ok, err)
	}
	resolved, _ := filepath.EvalSymlinks(found)
	wantResolved, _ := filepath.EvalSymlinks(root)
	if resolved != wantResolved {
		t.Fatalf("root = %q, want %q", found, root)
	}
}

func TestFindRootAbsent(t *testing.T) {
	_, ok, err := FindRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("no manifest should be found in an empty temp dir")
	}
}
