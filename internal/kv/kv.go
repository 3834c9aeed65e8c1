// Package kv provides the namespaced key-value persistence layer behind
// the query engine.
//
// Each table is stored as a single entry: the key is derived from the
// table name via Key, the value is the serialized ordered row array. The
// engine never touches a backend directly outside of whole-table get/set,
// so a single INSERT/UPDATE/DELETE is atomic with respect to its table on
// any backend whose Set is all-or-nothing.
//
// Backends:
//   - Memory: map-backed, for tests and ephemeral runs
//   - Dir: one file per key under a directory, atomic via rename
//   - SQLite: one kv table in a SQLite database (WAL mode)
package kv

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Backend is the injectable persistence surface for the query engine.
// get/set/has operate on whole serialized tables; Label is a descriptive
// identifier for the backend, not necessarily a filesystem path.
type Backend interface {
	// Get returns the stored value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Has reports whether key has a stored value.
	Has(key string) (bool, error)
	// Close releases backend resources. Data is retained.
	Close() error
	// Label describes this backend for diagnostics.
	Label() string
}

const tablePrefix = "table:"

// Key returns the deterministic namespaced storage key for a table name.
// Names are trimmed and NFC-normalized so visually identical names map to
// the same entry regardless of how the caller composed them.
func Key(table string) string {
	return tablePrefix + norm.NFC.String(strings.TrimSpace(table))
}
