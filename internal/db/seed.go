package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/questlog/questlog/internal/record"
	"github.com/questlog/questlog/internal/sqlparse"
)

// charactersTable is the well-known table seeded on first run. The
// journaling application expects at least one character to exist before
// any quest is written.
const charactersTable = "characters"

const (
	countCharacters = `SELECT COUNT(*) FROM characters`
	insertCharacter = `INSERT INTO characters (id, name, level, experience, createdAt) VALUES (?, ?, ?, ?, ?)`
)

// seedDefaults inserts the default character when the characters table is
// absent or empty. Errors propagate: a failed seed means Initialize
// failed, unlike regular statements which fail soft.
func (d *DB) seedDefaults() error {
	stmt, err := sqlparse.Parse(countCharacters)
	if err != nil {
		return fmt.Errorf("parse seed count: %w", err)
	}
	rows, err := d.exec.Query(stmt, nil)
	if err != nil {
		return fmt.Errorf("count %s: %w", charactersTable, err)
	}
	if len(rows) > 0 {
		if v, ok := rows[0].Get("count"); ok {
			if n, isNum := v.(record.Number); isNum && n > 0 {
				return nil
			}
		}
	}

	stmt, err = sqlparse.Parse(insertCharacter)
	if err != nil {
		return fmt.Errorf("parse seed insert: %w", err)
	}
	params := []any{
		uuid.NewString(),
		"Adventurer",
		1,
		0,
		d.now().UTC().Format(time.RFC3339),
	}
	if _, err := d.exec.Execute(stmt, params); err != nil {
		return fmt.Errorf("seed %s: %w", charactersTable, err)
	}
	d.logger.Info("seeded default character", "table", charactersTable)
	return nil
}
