package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snipvault/snipvault/internal/domain/model"
	"github.com/snipvault/snipvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SnippetStore = (*SnippetRepo)(nil)

// timeLayout is a fixed-width RFC 3339 variant with nanosecond padding so
// the stored strings sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SnippetRepo is the SQLite implementation of the SnippetStore port.
type SnippetRepo struct {
	db *DB
}

// NewSnippetRepo creates a SnippetRepo backed by the given DB.
func NewSnippetRepo(db *DB) *SnippetRepo {
	return &SnippetRepo{db: db}
}

// Create inserts a new snippet with a store-assigned id and creation time
// and returns the stored record. The caller has already validated the text.
func (r *SnippetRepo) Create(ctx context.Context, text string) (model.Snippet, error) {
	snippet := model.Snippet{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	const query = `INSERT INTO snippets (id, text, created_at) VALUES (?, ?, ?)`

	_, err := r.db.Writer.ExecContext(ctx, query,
		snippet.ID, snippet.Text, snippet.CreatedAt.Format(timeLayout))
	if err != nil {
		return model.Snippet{}, fmt.Errorf("insert snippet: %w", err)
	}

	return snippet, nil
}

// ListAll returns every snippet ordered by creation time, newest first.
// Insertion order breaks ties between identical timestamps.
func (r *SnippetRepo) ListAll(ctx context.Context) ([]model.Snippet, error) {
	const query = `SELECT id, text, created_at FROM snippets ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()

	var snippets []model.Snippet
	for rows.Next() {
		snippet, err := scanSnippet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippets = append(snippets, snippet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snippets: %w", err)
	}

	return snippets, nil
}

// Delete removes the snippet with the given id. A nonexistent id returns
// driven.ErrSnippetNotFound; the removal is a single keyed delete, so no
// partial application is possible.
func (r *SnippetRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM snippets WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete snippet %s: %w", id, driven.ErrSnippetNotFound)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnippet(s scanner) (model.Snippet, error) {
	var snippet model.Snippet
	var createdAt string

	if err := s.Scan(&snippet.ID, &snippet.Text, &createdAt); err != nil {
		return model.Snippet{}, err
	}

	parsed, err := parseTime(createdAt)
	if err != nil {
		return model.Snippet{}, fmt.Errorf("parse created_at: %w", err)
	}
	snippet.CreatedAt = parsed

	return snippet, nil
}

// parseTime tries the repo's own layout first, then common SQLite formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		timeLayout,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
