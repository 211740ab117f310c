// Package sqlite implements the repositories on a local SQLite file through
// database/sql and modernc.org/sqlite.
//
// Skills are stored as JSON text, dates as YYYY-MM-DD text and timestamps as
// fixed-width RFC 3339 text in UTC so that they sort lexically.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type scanner interface {
	Scan(dest ...any) error
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

func encodeSkills(skills model.Skills) (sql.NullString, error) {
	if len(skills) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal([]string(skills))
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodeSkills(value sql.NullString) (model.Skills, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(value.String), &skills); err != nil {
		return nil, fmt.Errorf("invalid skills column: %w", err)
	}
	return model.NormalizeSkills(skills), nil
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// insertReturning runs one INSERT ... RETURNING statement in its own
// transaction and scans the returned row with scan.
func insertReturning[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created, err := scan(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// listAll runs a SELECT and scans every row. The result is never nil.
func listAll[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
