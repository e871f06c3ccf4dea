package querier

import (
	"context"

	"github.com/darkclainer/webster/pkg/dict"
)

//go:generate go run github.com/vektra/mockery/cmd/mockery -name Querier -output ../mocks/

type Querier interface {
	Define(ctx context.Context, word string) (dict.Entry, error)
	Close(ctx context.Context) error
}
