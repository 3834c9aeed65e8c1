package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// Dir is a file-backed Backend: one file per key under a root directory.
// Keys are path-escaped to form file names. Writes go through a temp file
// and rename so a single Set is all-or-nothing.
type Dir struct {
	root string
}

// OpenDir creates or opens a directory-backed store rooted at root.
// Idempotent: safe to call on an existing store.
func OpenDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Dir{root: root}, nil
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, url.PathEscape(key))
}

// Get implements Backend. A missing file is (nil, false, nil), not an
// error.
func (d *Dir) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return data, true, nil
}

// Set implements Backend. The value lands under its final name only after
// a complete write.
func (d *Dir) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(d.root, ".write-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmpName, d.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit %q: %w", key, err)
	}
	return nil
}

// Has implements Backend.
func (d *Dir) Has(key string) (bool, error) {
	_, err := os.Stat(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", key, err)
	}
	return true, nil
}

// Close implements Backend. No open handles are held between calls.
func (d *Dir) Close() error {
	return nil
}

// Label implements Backend.
func (d *Dir) Label() string {
	return "dir://" + d.root
}
