package usecase

import (
	"context"
	"io"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/dto"
	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/repository/database"
	"diskrelay/internal/domain/repository/ipfs"
)

type ContentGetter struct {
	clients ipfs.ClientFactory
}

func NewContentGetter(clients ipfs.ClientFactory) *ContentGetter {
	return &ContentGetter{clients: clients}
}

func (g *ContentGetter) GetContent(ctx context.Context, cid string) (io.ReadCloser, error) {
	return g.clients.NewClient().Cat(ctx, cid)
}

// UploadGetter answers from the journal; without one every lookup is a miss.
type UploadGetter struct {
	retriever database.Retriever
}

func NewUploadGetter(retriever database.Retriever) *UploadGetter {
	return &UploadGetter{retriever: retriever}
}

func (g *UploadGetter) GetUpload(ctx context.Context, cid string) (*dto.UploadDescriptor, error) {
	if g.retriever == nil {
		return nil, domain.ErrNotFound
	}

	receipt, err := g.retriever.GetByRef(ctx, string(entity.EventUpload), cid)
	if err != nil {
		return nil, err
	}

	return &dto.UploadDescriptor{
		Cid:      receipt.Ref,
		Path:     receipt.Path,
		Size:     receipt.Size,
		Type:     receipt.Type,
		Uploaded: receipt.CreatedAt.Unix(),
	}, nil
}
