package querier

import (
	"context"
	"fmt"
	"os"

	"github.com/darkclainer/webster/pkg/dict"
)

// File looks words up by scanning the plain text dictionary. The file
// is opened on every call, a lookup is at most one pass over it.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (q *File) Define(ctx context.Context, word string) (dict.Entry, error) {
	if err := ctx.Err(); err != nil {
		return dict.Entry{}, err
	}
	f, err := os.Open(q.path)
	if err != nil {
		return dict.Entry{}, fmt.Errorf("can not open dictionary file: %w", err)
	}
	defer f.Close()
	entry, err := dict.Search(f, word)
	if err != nil {
		return dict.Entry{}, err
	}
	return entry, nil
}

func (q *File) Close(ctx context.Context) error {
	return nil
}
