package database

import (
	"context"

	"diskrelay/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, receipt *model.Receipt) error
}
