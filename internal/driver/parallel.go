package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"shard/internal/source"
)

// SourceExt is the file extension the directory walkers pick up.
const SourceExt = ".sd"

// listSourceFiles returns the sorted list of all source files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ParseDir loads every source file under dir and runs an independent
// front-end over each, bounded by the CPU count. Each file owns its own
// parser and diagnostic bag; the shared FileSet is only read during the
// concurrent phase. Results come back in deterministic path order.
func ParseDir(ctx context.Context, fileSet *source.FileSet, dir string, opts Options) ([]Result, error) {
	paths, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	ids := make([]source.FileID, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ParseFile(fileSet, ids[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
