package abstraction

import (
	"context"

	"diskrelay/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, filename string, content []byte) (entity.AddResult, error)
}
