package querier

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	// Register the sqlite3 driver for database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/darkclainer/webster/pkg/dict"
)

// DB looks words up in the precomputed SQLite database built by
// Convert.
type DB struct {
	db *sql.DB
}

// OpenDB opens the database at path and verifies that it carries the
// dictionary tables. sql.Open is lazy, so the verification is what
// catches a missing, truncated or foreign file.
func OpenDB(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no database file present: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can not open database: %w", err)
	}
	var tables int
	err = db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name IN ('words', 'definitions');`,
	).Scan(&tables)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("can not read database: %w", err)
	}
	if tables != 2 { // nolint:gomnd // words and definitions
		db.Close()
		return nil, fmt.Errorf("database has no dictionary tables: %s", path)
	}
	return &DB{db: db}, nil
}

const defineQuery = `
SELECT definitions.text
FROM definitions JOIN words ON words.id = definitions.word_id
WHERE words.word = ?
ORDER BY definitions.rowid;`

func (q *DB) Define(ctx context.Context, word string) (dict.Entry, error) {
	headword := strings.ToUpper(word)
	rows, err := q.db.QueryContext(ctx, defineQuery, headword)
	if err != nil {
		return dict.Entry{}, fmt.Errorf("definition query failed: %w", err)
	}
	defer rows.Close()
	entry := dict.Entry{Word: headword}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return dict.Entry{}, fmt.Errorf("definition scan failed: %w", err)
		}
		entry.Definitions = append(entry.Definitions, text)
	}
	if err := rows.Err(); err != nil {
		return dict.Entry{}, fmt.Errorf("definition rows failed: %w", err)
	}
	if len(entry.Definitions) == 0 {
		return dict.Entry{}, dict.ErrNotFound
	}
	return entry, nil
}

func (q *DB) Close(ctx context.Context) error {
	return q.db.Close()
}
