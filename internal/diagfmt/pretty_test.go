package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shard/internal/diag"
	"shard/internal/driver"
	"shard/internal/source"
)

func brokenParse(t *testing.T, src string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	r := driver.ParseSource(fs, "test.sd", []byte(src), driver.Options{})
	r.Bag.Sort()
	return r.Bag, fs
}

func TestPrettyOutput(t *testing.T) {
	bag, fs := brokenParse(t, "class { }")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	out := buf.String()
	if !strings.Contains(out, "test.sd:1:") {
		t.Fatalf("missing location prefix:\n%s", out)
	}
	if !strings.Contains(out, "ERROR: Identifier expected") {
		t.Fatalf("missing severity/message:\n%s", out)
	}
	if !strings.Contains(out, "class { }") {
		t.Fatalf("missing context line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret:\n%s", out)
	}
}

func TestPrettyCaretAlignsPastTabs(t *testing.T) {
	bag, fs := brokenParse(t, "\tclass { }")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{TabWidth: 4})

	lines := strings.Split(buf.String(), "\n")
	var context, caret string
	for i, l := range lines {
		if strings.Contains(l, "class { }") && i+1 < len(lines) {
			context, caret = l, lines[i+1]
			break
		}
	}
	if context == "" {
		t.Fatalf("no context line in:\n%s", buf.String())
	}
	if strings.ContainsRune(context, '\t') {
		t.Fatalf("tab not expanded: %q", context)
	}
	caretCol := strings.IndexAny(caret, "^")
	if caretCol < 0 {
		t.Fatalf("no caret in %q", caret)
	}
	// the caret must sit at or beyond the expanded tab
	if caretCol < len("  ")+4 {
		t.Fatalf("caret at %d, expected past the expanded tab", caretCol)
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := brokenParse(t, "class { }")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs); err != nil {
		t.Fatal(err)
	}

	var out []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out) == 0 {
		t.Fatal("no diagnostics in JSON output")
	}
	first := out[0]
	if first["severity"] != "ERROR" || first["path"] != "test.sd" {
		t.Fatalf("first = %v", first)
	}
	if _, ok := first["line"]; !ok {
		t.Fatal("line missing")
	}
}

func TestDetectColorNonFile(t *testing.T) {
	var buf bytes.Buffer
	if DetectColor(&buf) {
		t.Fatal("a bytes.Buffer is not a terminal")
	}
}
