package driver

import (
	"shard/internal/diag"
	"shard/internal/lexer"
	"shard/internal/parser"
	"shard/internal/source"
	"shard/internal/syntax"
)

// Options configures a front-end run.
type Options struct {
	// MaxDiagnostics bounds the per-file diagnostic bag; 0 means unbounded.
	MaxDiagnostics int
}

// Result is one file's front-end output: the lossless tree and the
// diagnostics accumulated by the lexer and parser.
type Result struct {
	Path   string
	FileID source.FileID
	Unit   *syntax.CompilationUnit
	Bag    *diag.Bag
}

// ParseFile runs lexer and parser over an already-loaded file.
func ParseFile(fs *source.FileSet, id source.FileID, opts Options) Result {
	file := fs.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	stream := lx.Tokenize()
	unit := parser.New(bag, stream).Parse()

	return Result{
		Path:   file.Path,
		FileID: id,
		Unit:   unit,
		Bag:    bag,
	}
}

// ParseSource is the in-memory convenience entry: it wraps src in a
// virtual file and parses it.
func ParseSource(fs *source.FileSet, name string, src []byte, opts Options) Result {
	id := fs.AddVirtual(name, src)
	return ParseFile(fs, id, opts)
}
