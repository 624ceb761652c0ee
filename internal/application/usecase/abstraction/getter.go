package abstraction

import (
	"context"
	"io"

	"diskrelay/internal/domain/dto"
)

// ContentGetter streams stored content back by CID.
type ContentGetter interface {
	GetContent(ctx context.Context, cid string) (io.ReadCloser, error)
}

// UploadGetter reads the journaled record of an upload.
type UploadGetter interface {
	GetUpload(ctx context.Context, cid string) (*dto.UploadDescriptor, error)
}
