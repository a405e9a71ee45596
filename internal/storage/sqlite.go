// Package storage persists tool records in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/wychen/toolshed/internal/catalog"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectToolFields is the standard field list for SELECT queries.
const selectToolFields = `id, name, language, version, platform, purpose,
	link, tags, snippet_path, notes, created_at, updated_at`

// OpenDB opens or creates a SQLite database at the given path.
// Creating the schema is idempotent, so opening an existing store
// never touches its records.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	// AUTOINCREMENT keeps ids monotonically increasing so a deleted
	// row's id is never reassigned.
	schema := `
		CREATE TABLE IF NOT EXISTS tools (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE CHECK (name <> ''),
			language TEXT NOT NULL DEFAULT '',
			version TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT '',
			purpose TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '',
			snippet_path TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Upsert inserts a tool or updates the existing row with the same
// name. An existing row keeps its id and created_at; updated_at is
// refreshed, clamped so it never precedes created_at. Returns the
// stored record.
func (d *DB) Upsert(t catalog.Tool) (catalog.Tool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return catalog.Tool{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stored, err := upsertTx(tx, t)
	if err != nil {
		return catalog.Tool{}, err
	}

	if err := tx.Commit(); err != nil {
		return catalog.Tool{}, fmt.Errorf("committing: %w", err)
	}
	return stored, nil
}

// UpsertAll applies upserts for all tools in a single transaction, so
// a failure partway through leaves the store untouched.
func (d *DB) UpsertAll(tools []catalog.Tool) ([]catalog.Tool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stored := make([]catalog.Tool, 0, len(tools))
	for _, t := range tools {
		s, err := upsertTx(tx, t)
		if err != nil {
			return nil, err
		}
		stored = append(stored, s)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}
	return stored, nil
}

func upsertTx(tx *sql.Tx, t catalog.Tool) (catalog.Tool, error) {
	if err := t.Validate(); err != nil {
		return catalog.Tool{}, err
	}

	now := catalog.Now()

	// created_at is immutable: an existing row always keeps its own.
	// A carried value (e.g. from a CSV import) only seeds fresh inserts.
	var created time.Time
	var existing sql.NullString
	err := tx.QueryRow(`SELECT created_at FROM tools WHERE name = ?`, t.Name).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return catalog.Tool{}, fmt.Errorf("looking up %s: %w", t.Name, err)
	}
	if existing.Valid && existing.String != "" {
		created, err = catalog.ParseTime(existing.String)
		if err != nil {
			return catalog.Tool{}, fmt.Errorf("stored created_at for %s: %w", t.Name, err)
		}
	}
	if created.IsZero() {
		created = t.CreatedAt
	}
	if created.IsZero() {
		created = now
	}

	updated := now
	if updated.Before(created) {
		updated = created // CSV imports can carry future created_at values
	}

	// The conflict clause leaves created_at alone.
	_, err = tx.Exec(`
		INSERT INTO tools (
			name, language, version, platform, purpose, link,
			tags, snippet_path, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			language = excluded.language,
			version = excluded.version,
			platform = excluded.platform,
			purpose = excluded.purpose,
			link = excluded.link,
			tags = excluded.tags,
			snippet_path = excluded.snippet_path,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, t.Name, t.Language, t.Version, t.Platform, t.Purpose, t.Link,
		t.TagsString(), t.SnippetPath, t.Notes,
		catalog.FormatTime(created), catalog.FormatTime(updated))
	if err != nil {
		return catalog.Tool{}, fmt.Errorf("upserting %s: %w", t.Name, err)
	}

	stored, err := getByNameTx(tx, t.Name)
	if err != nil {
		return catalog.Tool{}, err
	}
	if stored == nil {
		return catalog.Tool{}, fmt.Errorf("upserted row %s not found", t.Name)
	}
	return *stored, nil
}

// GetByName retrieves a tool by name. Returns nil, nil when absent.
func (d *DB) GetByName(name string) (*catalog.Tool, error) {
	row := d.db.QueryRow(`SELECT `+selectToolFields+` FROM tools WHERE name = ?`, name)
	return scanTool(row)
}

func getByNameTx(tx *sql.Tx, name string) (*catalog.Tool, error) {
	row := tx.QueryRow(`SELECT `+selectToolFields+` FROM tools WHERE name = ?`, name)
	return scanTool(row)
}

// Delete removes a tool by name. Returns whether a row was removed.
func (d *DB) Delete(name string) (bool, error) {
	res, err := d.db.Exec(`DELETE FROM tools WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Filters contains optional field filters for List and Search.
// Text filters match case-insensitive substrings; Tag matches one
// whole tag exactly.
type Filters struct {
	Language string
	Platform string
	Version  string
	Tag      string
}

func (f Filters) where() (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Language != "" {
		clauses = append(clauses, "lower(language) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Language)+"%")
	}
	if f.Platform != "" {
		clauses = append(clauses, "lower(platform) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Platform)+"%")
	}
	if f.Version != "" {
		clauses = append(clauses, "version LIKE ?")
		args = append(args, "%"+f.Version+"%")
	}
	if f.Tag != "" {
		// Wrap the stored tag list in delimiters so "viz" can't
		// match inside "graphviz".
		clauses = append(clauses, "','||lower(tags)||',' LIKE ?")
		args = append(args, "%,"+strings.ToLower(f.Tag)+",%")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// List returns tools matching the filters in id (insertion) order,
// optionally limited. A zero limit means all.
func (d *DB) List(f Filters, limit int) ([]catalog.Tool, error) {
	query := `SELECT ` + selectToolFields + ` FROM tools WHERE 1=1`
	where, args := f.where()
	query += where + " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	defer rows.Close()

	return scanTools(rows)
}

// Search returns tools where the query substring-matches (case-
// insensitive) the name, purpose, tags, link, or notes, further
// narrowed by the filters, in id order.
func (d *DB) Search(query string, f Filters, limit int) ([]catalog.Tool, error) {
	q := `SELECT ` + selectToolFields + ` FROM tools
		WHERE (lower(name) LIKE ? OR lower(purpose) LIKE ?
			OR lower(tags) LIKE ? OR lower(link) LIKE ? OR lower(notes) LIKE ?)`
	needle := "%" + strings.ToLower(query) + "%"
	args := []interface{}{needle, needle, needle, needle, needle}

	where, whereArgs := f.where()
	q += where
	args = append(args, whereArgs...)
	q += " ORDER BY id"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanTools(rows)
}

// Count returns the total number of tools.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM tools").Scan(&count)
	return count, err
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTool(s scanner) (*catalog.Tool, error) {
	var t catalog.Tool
	var tags, createdAt, updatedAt string

	err := s.Scan(
		&t.ID, &t.Name, &t.Language, &t.Version, &t.Platform, &t.Purpose,
		&t.Link, &tags, &t.SnippetPath, &t.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	t.Tags = catalog.SplitTags(tags)
	if t.CreatedAt, err = catalog.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at for %s: %w", t.Name, err)
	}
	if t.UpdatedAt, err = catalog.ParseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at for %s: %w", t.Name, err)
	}

	return &t, nil
}

func scanTools(rows *sql.Rows) ([]catalog.Tool, error) {
	var tools []catalog.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		if t != nil {
			tools = append(tools, *t)
		}
	}
	return tools, rows.Err()
}
