package diag

import (
	"testing"

	"shard/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestBagAddAndLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Error(SynTokenExpected, sp(0, 1), "';' expected") {
		t.Fatal("first add rejected")
	}
	if !b.Warning(UnknownCode, sp(1, 2), "w") {
		t.Fatal("second add rejected")
	}
	if b.Add(NewError(UnknownCode, sp(2, 3), "overflow")) {
		t.Fatal("limit not enforced")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() {
		t.Fatal("HasErrors = false")
	}
}

func TestSuppressRestore(t *testing.T) {
	b := NewBag(0)
	b.Error(SynTokenExpected, sp(0, 1), "kept")

	mark := b.Len()
	s := b.Suppress()
	b.Error(SynTypeExpected, sp(1, 2), "provisional")
	b.Error(SynExpressionExpected, sp(2, 3), "provisional too")
	s.Restore()

	if b.Len() != mark {
		t.Fatalf("Len after restore = %d, want %d", b.Len(), mark)
	}
	if b.Items()[0].Message != "kept" {
		t.Fatalf("surviving diagnostic = %q", b.Items()[0].Message)
	}
}

func TestSuppressCommitKeepsEntries(t *testing.T) {
	b := NewBag(0)
	_ = b.Suppress() // dropped checkpoint commits the entries
	b.Error(SynTokenExpected, sp(0, 0), "committed")
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
}

func TestSortOrder(t *testing.T) {
	b := NewBag(0)
	b.Warning(UnknownCode, sp(5, 6), "later")
	b.Error(SynTokenExpected, sp(1, 2), "earlier")
	b.Sort()
	if b.Items()[0].Message != "earlier" {
		t.Fatal("sort did not order by start offset")
	}
}
