package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"decaf/internal/diag"
	"decaf/internal/project"
	"decaf/internal/source"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores diagnose results on disk keyed by content hash and stage.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached diagnose result. Spans are stored without a
// FileID and rebound to the file being checked on load.
type DiskPayload struct {
	Schema      uint16
	Stage       string
	OK          bool
	Errors      []string
	Diagnostics []CachedDiagnostic
}

type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// CacheKey derives the entry key for file content checked up to stage.
func CacheKey(content project.Digest, stage Stage) project.Digest {
	schema := []byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)}
	return project.Combine(content, schema, []byte(stage))
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "diag", key.String()+".mp")
}

// Put serializes payload and atomically replaces the entry for key.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the entry for key into out. A missing entry or one written with
// another schema version is a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func toPayload(stage Stage, res *DiagnoseResult) *DiskPayload {
	items := res.Bag.Items()
	p := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Stage:       string(stage),
		OK:          res.OK,
		Errors:      res.Errors,
		Diagnostics: make([]CachedDiagnostic, 0, len(items)),
	}
	for _, d := range items {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		p.Diagnostics = append(p.Diagnostics, cd)
	}
	return p
}

// restore refills res from p, binding every span to file.
func (p *DiskPayload) restore(res *DiagnoseResult, file source.FileID) {
	res.OK = p.OK
	res.Errors = p.Errors
	for _, cd := range p.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Span{File: file, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		res.Bag.Add(d)
	}
}
