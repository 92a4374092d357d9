// CLAUDE:SUMMARY SQLite content catalog — one row per ingested course package.
// Package catalog persists the content-catalog records produced by package
// ingestion and applies filename-keyword compliance categorization.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hazyhaar/coursepack/dbopen"
	"github.com/hazyhaar/coursepack/idgen"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS courses (
    id               TEXT PRIMARY KEY,
    title            TEXT NOT NULL,
    description      TEXT NOT NULL DEFAULT '',
    format           TEXT NOT NULL,
    entry_point      TEXT NOT NULL,
    version          TEXT NOT NULL DEFAULT '',
    activity_id      TEXT NOT NULL DEFAULT '',
    launch_url       TEXT NOT NULL DEFAULT '',
    language         TEXT NOT NULL DEFAULT '',
    duration_minutes REAL NOT NULL DEFAULT 0,
    source_filename  TEXT NOT NULL,
    sha256           TEXT NOT NULL,
    size_bytes       INTEGER NOT NULL,
    required         INTEGER NOT NULL DEFAULT 0,
    needs_approval   INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_courses_sha256 ON courses(sha256);
CREATE INDEX IF NOT EXISTS idx_courses_format ON courses(format);
`

// Course is one catalog record.
type Course struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Format          string  `json:"format"`
	EntryPoint      string  `json:"entry_point"`
	Version         string  `json:"version,omitempty"`
	ActivityID      string  `json:"activity_id,omitempty"`
	LaunchURL       string  `json:"launch_url,omitempty"`
	Language        string  `json:"language,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	SourceFilename  string  `json:"source_filename"`
	SHA256          string  `json:"sha256"`
	SizeBytes       int64   `json:"size_bytes"`
	Required        bool    `json:"required"`
	NeedsApproval   bool    `json:"needs_approval"`
	CreatedAt       string  `json:"created_at"`
}

// Store wraps the catalog SQLite database.
type Store struct {
	db    *sql.DB
	newID idgen.Generator
}

// Open opens (or creates) the catalog database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(schemaDDL))
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	return New(db)
}

// New wraps an already-open database (used by tests with dbopen.OpenMemory)
// and ensures the schema exists.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schemaDDL); err != nil {
		return nil, fmt.Errorf("catalog: migrate: %w", err)
	}
	return &Store{db: db, newID: idgen.Prefixed("crs_", idgen.Default)}, nil
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Insert writes a new catalog record. A zero ID or CreatedAt is filled in.
func (s *Store) Insert(ctx context.Context, c *Course) error {
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return dbopen.RunTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO courses (
				id, title, description, format, entry_point, version,
				activity_id, launch_url, language, duration_minutes,
				source_filename, sha256, size_bytes, required, needs_approval, created_at
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			c.ID, c.Title, c.Description, c.Format, c.EntryPoint, c.Version,
			c.ActivityID, c.LaunchURL, c.Language, c.DurationMinutes,
			c.SourceFilename, c.SHA256, c.SizeBytes, c.Required, c.NeedsApproval, c.CreatedAt)
		if err != nil {
			return fmt.Errorf("catalog: insert %s: %w", c.ID, err)
		}
		return nil
	})
}

const courseColumns = `id, title, description, format, entry_point, version,
	activity_id, launch_url, language, duration_minutes,
	source_filename, sha256, size_bytes, required, needs_approval, created_at`

// Get returns the course with the given ID, or nil when absent.
func (s *Store) Get(ctx context.Context, id string) (*Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get %s: %w", id, err)
	}
	return c, nil
}

// GetBySHA256 returns the first course with the given content hash, or nil.
// Used for upload deduplication.
func (s *Store) GetBySHA256(ctx context.Context, sha256 string) (*Course, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE sha256 = ? ORDER BY id LIMIT 1`, sha256)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get by sha256: %w", err)
	}
	return c, nil
}

// List returns all courses, newest first (UUIDv7 IDs are time-sortable).
func (s *Store) List(ctx context.Context) ([]*Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Delete removes a course record. Removing an absent ID is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("catalog: delete %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*Course, error) {
	var c Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Format, &c.EntryPoint, &c.Version,
		&c.ActivityID, &c.LaunchURL, &c.Language, &c.DurationMinutes,
		&c.SourceFilename, &c.SHA256, &c.SizeBytes, &c.Required, &c.NeedsApproval, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
