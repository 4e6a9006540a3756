package source

import (
	"strings"
	"testing"
)

func TestAddVirtualKeepsBytes(t *testing.T) {
	fs := NewFileSet()
	content := "class C {\r\n}\r\n"
	id := fs.AddVirtual("test.sd", []byte(content))
	f := fs.Get(id)
	if string(f.Content) != content {
		t.Fatalf("virtual content modified: %q", f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatal("FileVirtual flag not set")
	}
}

func TestPositionMapping(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sd", []byte("ab\ncd\n\nxyz"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline terminates line 1
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}
	for _, c := range cases {
		got := fs.Position(id, c.off)
		if got.Line != c.line || got.Col != c.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", c.off, got.Line, got.Col, c.line, c.col)
		}
	}
}

// Every offset maps to a line whose start-to-offset prefix holds no newline.
func TestPositionLineStartInverse(t *testing.T) {
	fs := NewFileSet()
	content := "first\nsecond\n\nlast line"
	id := fs.AddVirtual("test.sd", []byte(content))
	f := fs.Get(id)

	for off := uint32(0); off <= uint32(len(content)); off++ {
		lc := fs.Position(id, off)
		start := f.LineStart(lc.Line)
		if start > off {
			t.Fatalf("line start %d beyond offset %d", start, off)
		}
		if strings.ContainsRune(content[start:off], '\n') {
			t.Fatalf("prefix of offset %d (line %d) crosses a newline", off, lc.Line)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sd", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "one" {
		t.Errorf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "two" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 = %q, want empty", got)
	}
}
