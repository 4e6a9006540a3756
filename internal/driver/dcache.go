package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"shard/internal/diag"
	"shard/internal/source"
	"shard/internal/syntax"
)

// Current schema version - increment when CachePayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a file content hash used as a cache key.
type Digest = [32]byte

// DiagRecord is the serializable shape of one diagnostic.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
}

// CachePayload stores a file's front-end outcome for fast re-checks: the
// diagnostics and a broken flag, keyed by content hash. The tree itself
// is cheap to rebuild and is not cached.
type CachePayload struct {
	Schema uint16

	Path       string
	TokenCount int
	Broken     bool

	Diagnostics []DiagRecord
}

// DiskCache stores payloads keyed by Digest on disk.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// XDG cache location for app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// a "files" subdirectory keeps the cache root readable
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".msgpack")
}

// Store writes the payload for key, creating parent directories.
func (c *DiskCache) Store(key Digest, payload CachePayload) error {
	payload.Schema = diskCacheSchemaVersion

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the payload for key. ok is false on a miss or on a payload
// written by a different schema version.
func (c *DiskCache) Load(key Digest) (CachePayload, bool, error) {
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CachePayload{}, false, nil
		}
		return CachePayload{}, false, err
	}

	var payload CachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		// a corrupt entry is a miss, not a failure
		return CachePayload{}, false, nil
	}
	if payload.Schema != diskCacheSchemaVersion {
		return CachePayload{}, false, nil
	}
	return payload, true, nil
}

// Summarize converts a front-end result into its cache payload.
func Summarize(fileSet *source.FileSet, r Result) CachePayload {
	file := fileSet.Get(r.FileID)
	payload := CachePayload{
		Path:       file.Path,
		TokenCount: countTokens(r),
		Broken:     r.Bag.HasErrors(),
	}
	for _, d := range r.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return payload
}

// Restore turns a cached payload back into a diagnostic bag.
func Restore(payload CachePayload, file source.FileID) *diag.Bag {
	bag := diag.NewBag(0)
	for _, r := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(r.Severity),
			Code:     diag.Code(r.Code),
			Message:  r.Message,
			Primary:  source.Span{File: file, Start: r.Start, End: r.End},
		})
	}
	return bag
}

func countTokens(r Result) int {
	if r.Unit == nil {
		return 0
	}
	return len(syntax.Tokens(r.Unit))
}
