// Package db exposes the storage contract the questlog application is
// written against: lifecycle, query/execute over the constrained SQL
// dialect, and no-op transaction hooks.
//
// The contract is fail-soft by design: malformed or unsupported statement
// text never surfaces as an error to the caller. Queries degrade to an
// empty result and mutations to a zero affected-count, with the specific
// failure reason reported through the diagnostic logger. The calling
// application keeps running against bad SQL exactly as it would against
// SQL that matched nothing.
package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/questlog/questlog/internal/engine"
	"github.com/questlog/questlog/internal/kv"
	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// DB is the single-process storage handle. All operations are synchronous
// and run to completion; the context is checked on entry only.
type DB struct {
	backend     kv.Backend
	exec        *engine.Executor
	logger      *slog.Logger
	now         func() time.Time
	initialized bool
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the diagnostic logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *DB) {
		d.logger = logger
	}
}

// WithClock sets the time source used for seeded records. Defaults to
// time.Now. Tests inject a fixed clock for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *DB) {
		d.now = now
	}
}

// New creates a DB over the given backend. Call Initialize before use;
// queries are still served beforehand since readiness is advisory.
func New(backend kv.Backend, opts ...Option) *DB {
	d := &DB{
		backend: backend,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.exec = engine.New(backend, d.logger)
	return d
}

// Initialize marks the store ready and seeds first-run defaults.
// Idempotent: safe to call when data already exists.
func (d *DB) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.seedDefaults(); err != nil {
		return err
	}
	d.initialized = true
	d.logger.Info("store initialized", "path", d.Path())
	return nil
}

// Close marks the store not-ready and releases the backend. No data is
// discarded.
func (d *DB) Close() error {
	d.initialized = false
	return d.backend.Close()
}

// IsInitialized reports current readiness.
func (d *DB) IsInitialized() bool {
	return d.initialized
}

// Path returns a descriptive label for the backend. Not necessarily a
// filesystem path.
func (d *DB) Path() string {
	return d.backend.Label()
}

// TableExists reports whether the underlying store has an entry for the
// table name.
func (d *DB) TableExists(name string) bool {
	ok, err := d.backend.Has(kv.Key(name))
	if err != nil {
		d.logger.Error("table existence check failed", "table", name, "error", err)
		return false
	}
	return ok
}

// Query runs a SELECT-class statement and returns zero or more rows, or
// a single count row for COUNT(*). Unsupported or malformed statement
// text degrades to an empty result.
func (d *DB) Query(ctx context.Context, statement string, params ...any) ([]*record.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stmt, ok := d.parse(statement)
	if !ok {
		return []*record.Row{}, nil
	}
	if _, isSelect := stmt.(*sqlparse.Select); !isSelect {
		d.logger.Warn("query called with a non-SELECT statement, returning empty",
			"statement", statement)
		return []*record.Row{}, nil
	}
	rows, err := d.exec.Query(stmt, params)
	if err != nil {
		d.logger.Error("query degraded to empty result", "statement", statement, "error", err)
		return []*record.Row{}, nil
	}
	if rows == nil {
		rows = []*record.Row{}
	}
	return rows, nil
}

// QueryOne returns the first row of Query, or nil when the result is
// empty.
func (d *DB) QueryOne(ctx context.Context, statement string, params ...any) (*record.Row, error) {
	rows, err := d.Query(ctx, statement, params...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Execute runs an INSERT/UPDATE/DELETE-class statement and returns the
// affected row count. Unsupported or malformed statement text and
// persistence write failures degrade to zero; the intent of a failed
// write is lost, no retry is attempted.
func (d *DB) Execute(ctx context.Context, statement string, params ...any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	stmt, ok := d.parse(statement)
	if !ok {
		return 0, nil
	}
	if _, isSelect := stmt.(*sqlparse.Select); isSelect {
		d.logger.Warn("execute called with a SELECT statement, returning zero",
			"statement", statement)
		return 0, nil
	}
	n, err := d.exec.Execute(stmt, params)
	if err != nil {
		d.logger.Error("execute degraded to zero affected rows",
			"statement", statement, "error", err)
		return 0, nil
	}
	return n, nil
}

// parse applies the fail-soft policy to statement parsing. The second
// return is false when the statement cannot run.
func (d *DB) parse(statement string) (sqlparse.Statement, bool) {
	stmt, err := sqlparse.Parse(statement)
	if err == nil {
		return stmt, true
	}
	switch {
	case errors.Is(err, sqlparse.ErrUnsupportedStatement):
		d.logger.Warn("unrecognized statement kind", "statement", statement, "error", err)
	case errors.Is(err, sqlparse.ErrUnsupportedSyntax):
		d.logger.Warn("unsupported statement syntax", "statement", statement, "error", err)
	default:
		d.logger.Warn("statement parse failed", "statement", statement, "error", err)
	}
	return nil, false
}

// BeginTransaction is a no-op lifecycle hook. There is no transactional
// isolation; callers must not depend on rollback undoing writes.
func (d *DB) BeginTransaction() error { return nil }

// Commit is a no-op lifecycle hook.
func (d *DB) Commit() error { return nil }

// Rollback is a no-op lifecycle hook. Writes are not undone.
func (d *DB) Rollback() error { return nil }

// Transaction invokes fn once, unwrapped. If fn fails partway through a
// sequence of writes, prior writes remain persisted.
func (d *DB) Transaction(ctx context.Context, fn func(*DB) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(d)
}
