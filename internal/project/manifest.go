package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project manifest file name.
const ManifestName = "shard.toml"

// Manifest is the parsed shard.toml.
type Manifest struct {
	Project  ProjectSection  `toml:"project"`
	Frontend FrontendSection `toml:"frontend"`
}

// ProjectSection is the [project] table.
type ProjectSection struct {
	Name string `toml:"name"`
	// Sources lists directories (relative to the project root) that the
	// directory walkers scan for source files.
	Sources []string `toml:"sources"`
}

// FrontendSection is the [frontend] table: knobs that flow into the
// lexer/parser options and the diagnostic renderer.
type FrontendSection struct {
	MaxErrors int `toml:"max_errors"`
	TabWidth  int `toml:"tab_width"`
}

// Defaults used when a section or field is absent.
const (
	DefaultMaxErrors = 200
	DefaultTabWidth  = 4
)

// ErrProjectSectionMissing indicates that [project] is missing.
var ErrProjectSectionMissing = errors.New("missing [project]")

// LoadManifest reads and validates a shard.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if m.Project.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	if m.Frontend.MaxErrors <= 0 {
		m.Frontend.MaxErrors = DefaultMaxErrors
	}
	if m.Frontend.TabWidth <= 0 {
		m.Frontend.TabWidth = DefaultTabWidth
	}
	if len(m.Project.Sources) == 0 {
		m.Project.Sources = []string{"."}
	}
	return &m, nil
}

// FindManifest walks up from startDir to locate shard.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing shard.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
