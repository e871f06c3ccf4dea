package querier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/webster/pkg/dict"
)

// Fallback queries the database first and falls back to scanning the
// text file when the database fails. A clean miss from a healthy
// database is authoritative, the database mirrors the whole file.
type Fallback struct {
	db     Querier
	file   Querier
	logger *zap.Logger
}

// NewFallback wraps db over file. A nil db means the database is
// unavailable and every lookup goes to the file.
func NewFallback(db, file Querier, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{
		db:     db,
		file:   file,
		logger: logger,
	}
}

func (q *Fallback) Define(ctx context.Context, word string) (dict.Entry, error) {
	if q.db == nil {
		return q.file.Define(ctx, word)
	}
	entry, err := q.db.Define(ctx, word)
	if err == nil || errors.Is(err, dict.ErrNotFound) {
		return entry, err
	}
	q.logger.Warn("database lookup failed, falling back to the text file",
		zap.String("word", word),
		zap.Error(err),
	)
	return q.file.Define(ctx, word)
}

func (q *Fallback) Close(ctx context.Context) error {
	var reasons []string
	if q.db != nil {
		if closeErr := q.db.Close(ctx); closeErr != nil {
			reasons = append(reasons, "database close failed: "+closeErr.Error())
		}
	}
	if closeErr := q.file.Close(ctx); closeErr != nil {
		reasons = append(reasons, "dictionary close failed: "+closeErr.Error())
	}
	if len(reasons) != 0 {
		return fmt.Errorf("close failed because: %s", strings.Join(reasons, " AND "))
	}
	return nil
}
