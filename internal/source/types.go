package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Len returns the content length in bytes.
func (f *File) Len() int { return len(f.Content) }

// Byte returns the byte at off. Out-of-range offsets yield 0.
func (f *File) Byte(off uint32) byte {
	if int(off) >= len(f.Content) {
		return 0
	}
	return f.Content[off]
}

// Slice returns the content covered by span as a string.
func (f *File) Slice(span Span) string {
	start, end := span.Start, span.End
	if int(start) > len(f.Content) {
		start = uint32(len(f.Content))
	}
	if int(end) > len(f.Content) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
