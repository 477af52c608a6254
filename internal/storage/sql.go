package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/lapwise/internal/models"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// SQLStore implements ComparisonStore on SQLite or PostgreSQL.
type SQLStore struct {
	db     *sql.DB
	driver string
	// path is the SQLite file, empty for PostgreSQL.
	path string
}

// Open opens a store for driver. For SQLite dsn is a file path, whose parent
// directories are created; for PostgreSQL it is a connection string.
func Open(driver, dsn string) (*SQLStore, error) {
	switch driver {
	case DriverSQLite, "sqlite", "":
		return NewSQLiteStore(dsn)
	case DriverPostgres, "postgresql":
		return NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", driver)
	}
}

// NewSQLiteStore opens or creates a SQLite database at dbPath in WAL mode.
func NewSQLiteStore(dbPath string) (*SQLStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open(DriverSQLite, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	return newSQLStore(db, DriverSQLite, dbPath)
}

// NewPostgresStore connects to PostgreSQL at dsn.
func NewPostgresStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return newSQLStore(db, DriverPostgres, "")
}

func newSQLStore(db *sql.DB, driver, path string) (*SQLStore, error) {
	s := &SQLStore{db: db, driver: driver, path: path}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLStore) initSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS comparisons (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			persona TEXT,
			laptops TEXT NOT NULL,
			summary TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	return rebindDollar(query)
}

func rebindDollar(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Save inserts c, or replaces the comparison with the same ID.
func (s *SQLStore) Save(ctx context.Context, c *models.SavedComparison) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	laptopsJSON, err := json.Marshal(c.Laptops)
	if err != nil {
		return fmt.Errorf("failed to marshal laptops: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM comparisons WHERE id = ?`), c.ID); err != nil {
		return fmt.Errorf("failed to replace comparison: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		s.rebind(`INSERT INTO comparisons (id, title, persona, laptops, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`),
		c.ID, c.Title, c.Persona, string(laptopsJSON), c.Summary, c.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert comparison: %w", err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComparison(row rowScanner) (*models.SavedComparison, error) {
	var (
		c           models.SavedComparison
		persona     sql.NullString
		summary     sql.NullString
		laptopsJSON string
	)
	if err := row.Scan(&c.ID, &c.Title, &persona, &laptopsJSON, &summary, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Persona = persona.String
	c.Summary = summary.String
	if err := json.Unmarshal([]byte(laptopsJSON), &c.Laptops); err != nil {
		return nil, fmt.Errorf("failed to unmarshal laptops: %w", err)
	}
	return &c, nil
}

// Get returns the comparison with id, or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, id string) (*models.SavedComparison, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT id, title, persona, laptops, summary, created_at
		 FROM comparisons WHERE id = ?`), id)
	c, err := scanComparison(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns up to limit comparisons, newest first.
func (s *SQLStore) List(ctx context.Context, offset, limit int) ([]*models.SavedComparison, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, title, persona, laptops, summary, created_at
		 FROM comparisons ORDER BY created_at DESC, id LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SavedComparison
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes the comparison with id, or returns ErrNotFound.
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM comparisons WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of saved comparisons.
func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comparisons`).Scan(&n)
	return n, err
}

// DiskUsage returns the size of the SQLite files, or 0 for PostgreSQL.
func (s *SQLStore) DiskUsage() (int64, error) {
	if s.path == "" {
		return 0, nil
	}
	return DiskUsageBytes(s.path, s.path+"-wal", s.path+"-shm")
}

// Close closes the database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

var _ ComparisonStore = (*SQLStore)(nil)
