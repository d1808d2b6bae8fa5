// Package sqlite provides a SQLite-backed roll-table catalog.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/dicecast/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dicecast/internal/table"
	"github.com/louisbranch/dicecast/internal/table/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the named table is not in the catalog.
var ErrNotFound = errors.New("table not found")

// Store persists roll tables in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a catalog store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveTable inserts or replaces one roll table and its entries.
func (s *Store) SaveTable(ctx context.Context, t *table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("table name is required")
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validate table %q: %w", name, err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save table: %w", err)
	}

	now := time.Now().UTC().UnixMilli()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO roll_tables (name, created_at, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET updated_at = excluded.updated_at`,
		name, now, now,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save table %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM roll_table_entries WHERE table_name = ?`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear table entries %q: %w", name, err)
	}
	for _, entry := range t.Entries {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO roll_table_entries (table_name, min_value, max_value, text)
			 VALUES (?, ?, ?, ?)`,
			name, entry.Min, entry.Max, entry.Text,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save table entry %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save table %q: %w", name, err)
	}
	return nil
}

// GetTable returns one roll table by name.
func (s *Store) GetTable(ctx context.Context, name string) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("table name is required")
	}

	var stored string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT name FROM roll_tables WHERE name = ?`, name).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get table %q: %w", name, err)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT min_value, max_value, text
		   FROM roll_table_entries
		  WHERE table_name = ?
		  ORDER BY min_value ASC`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("get table entries %q: %w", name, err)
	}
	defer rows.Close()

	t := &table.Table{Name: stored}
	for rows.Next() {
		var entry table.Entry
		if err := rows.Scan(&entry.Min, &entry.Max, &entry.Text); err != nil {
			return nil, fmt.Errorf("get table entries %q: %w", name, err)
		}
		t.Entries = append(t.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get table entries %q: %w", name, err)
	}
	return t, nil
}

// ListTables returns every catalog table name in ascending order.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM roll_tables ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}
