package sqlvault

import (
	"errors"
	"fmt"
)

// Dialect selects the SQL driver, the goose dialect and the placeholder style.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var ErrUnsupportedDialect = errors.New("unsupported sql dialect")

type queries struct {
	get    string
	upsert string
	delete string
}

func (d Dialect) driverName() (string, error) {
	switch d {
	case DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, string(d))
	}
}

func (d Dialect) gooseDialect() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite3"
}

func (d Dialect) queries() queries {
	if d == DialectPostgres {
		return queries{
			get: `SELECT value FROM secrets WHERE key = $1`,
			upsert: `
		INSERT INTO secrets (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			delete: `DELETE FROM secrets WHERE key = $1`,
		}
	}
	return queries{
		get: `SELECT value FROM secrets WHERE key = ?`,
		upsert: `
		INSERT INTO secrets (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		delete: `DELETE FROM secrets WHERE key = ?`,
	}
}
