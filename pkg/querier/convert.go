package querier

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/darkclainer/webster/pkg/dict"
)

const schemaSQL = `
CREATE TABLE words (
	id INTEGER PRIMARY KEY,
	word TEXT
);
CREATE TABLE definitions (
	word_id REFERENCES words(id),
	text TEXT
);`

// Convert parses the whole text dictionary from r and writes it into a
// new SQLite database at path. An existing file at path is replaced.
// All entries go in a single transaction, so a failed conversion leaves
// no partial database behind.
func Convert(ctx context.Context, r io.Reader, path string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("can not replace %s: %w", path, err)
	}
	entries, err := dict.ParseAll(r)
	if err != nil {
		return fmt.Errorf("can not parse dictionary: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("can not create database: %w", err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("can not create schema: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for _, entry := range entries {
		if err := insertEntry(tx, entry); err != nil {
			return err
		}
		logger.Debug("stored entry",
			zap.String("word", entry.Word),
			zap.Int("definitions", len(entry.Definitions)),
		)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("can not commit conversion: %w", err)
	}
	logger.Info("conversion finished",
		zap.String("path", path),
		zap.Int("words", len(entries)),
	)
	return nil
}

func insertEntry(tx *sql.Tx, entry dict.Entry) error {
	result, err := tx.Exec(`INSERT INTO words(word) VALUES (?);`, entry.Word)
	if err != nil {
		return fmt.Errorf("can not insert word %s: %w", entry.Word, err)
	}
	wordID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("can not get id of word %s: %w", entry.Word, err)
	}
	for _, text := range entry.Definitions {
		if _, err := tx.Exec(
			`INSERT INTO definitions(word_id, text) VALUES (?, ?);`,
			wordID, text,
		); err != nil {
			return fmt.Errorf("can not insert definition of %s: %w", entry.Word, err)
		}
	}
	return nil
}
