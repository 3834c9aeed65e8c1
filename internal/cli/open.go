package cli

import (
	"fmt"
	"io"

	"github.com/questlog/questlog/internal/db"
	"github.com/questlog/questlog/internal/kv"
)

// openStore builds the backend selected by the options and wraps it in a
// DB handle. The caller owns the returned handle and must Close it.
func openStore(opts *RootOptions, diag io.Writer) (*db.DB, error) {
	var (
		backend kv.Backend
		err     error
	)
	switch opts.Backend {
	case "memory":
		backend = kv.NewMemory()
	case "file":
		backend, err = kv.OpenDir(opts.DBPath)
	case "sqlite":
		backend, err = kv.OpenSQLite(opts.DBPath)
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", opts.Backend, err)
	}
	return db.New(backend, db.WithLogger(newLogger(diag, opts.Verbose))), nil
}
