package ipfs

import (
	"context"
	"io"

	"diskrelay/internal/domain/entity"
)

type Client interface {
	Add(ctx context.Context, name string, data []byte, contentType string) (entity.AddResult, error)
	Cat(ctx context.Context, cid string) (io.ReadCloser, error)
}

// ClientFactory hands out a new client per call; clients are never reused.
type ClientFactory interface {
	NewClient() Client
}
