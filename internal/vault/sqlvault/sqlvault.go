// Package sqlvault stores vault entries in a single `secrets` table through
// database/sql. SQLite (modernc.org/sqlite) is the on-device default;
// PostgreSQL via pgx is available for development setups. The schema is
// managed by embedded goose migrations.
package sqlvault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/securestore/internal/dbx"
	"github.com/dmitrijs2005/securestore/internal/vault/sqlvault/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Vault is a vault.Vault backed by a SQL table.
type Vault struct {
	db *sql.DB
	q  queries
}

// New wraps an already migrated database.
func New(db *sql.DB, dialect Dialect) *Vault {
	return &Vault{db: db, q: dialect.queries()}
}

// Open connects to dsn with the driver for dialect, applies migrations and
// returns the vault. The caller owns the returned vault and must Close it.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Vault, error) {
	driver, err := dialect.driverName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate secrets schema: %w", err)
	}
	return New(db, dialect), nil
}

// RunMigrations applies the embedded migrations for dialect. It is safe to
// call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.gooseDialect()); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, string(dialect))
}

func (v *Vault) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, v.db, v.q, key)
}

func (v *Vault) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, v.db, v.q, key, value)
}

// SetMany writes all values in one transaction.
func (v *Vault) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, val := range values {
			if err := set(ctx, tx, v.q, k, val); err != nil {
				return err
			}
		}
		return nil
	})
}

func (v *Vault) Delete(ctx context.Context, key string) error {
	_, err := v.db.ExecContext(ctx, v.q.delete, key)
	if err != nil {
		return fmt.Errorf("failed to delete secret[%s]: %w", key, err)
	}
	return nil
}

func (v *Vault) Close() error {
	return v.db.Close()
}

func get(ctx context.Context, db dbx.DBTX, q queries, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, q queries, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, q.upsert, key, value); err != nil {
		return fmt.Errorf("failed to set secret[%s]: %w", key, err)
	}
	return nil
}
