package database

import (
	"context"

	"diskrelay/internal/domain/model"
)

type Retriever interface {
	GetByRef(ctx context.Context, kind, ref string) (*model.Receipt, error)
}
