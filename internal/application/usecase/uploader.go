package usecase

import (
	"context"

	"github.com/gabriel-vasile/mimetype"

	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/model"
	"diskrelay/internal/domain/repository/broker"
	"diskrelay/internal/domain/repository/database"
	"diskrelay/internal/domain/repository/ipfs"
	"diskrelay/pkg/logger"
)

type Uploader struct {
	clients ipfs.ClientFactory
	recorder
}

func NewUploader(clients ipfs.ClientFactory, writer database.Writer, publisher broker.Publisher) *Uploader {
	return &Uploader{
		clients:  clients,
		recorder: recorder{writer: writer, publisher: publisher},
	}
}

// Upload adds content to IPFS under filename using a client built for this
// call only.
func (u *Uploader) Upload(ctx context.Context, filename string, content []byte) (entity.AddResult, error) {
	contentType := mimetype.Detect(content).String()

	res, err := u.clients.NewClient().Add(ctx, filename, content, contentType)
	if err != nil {
		return entity.AddResult{}, err
	}

	logger.Info("content added", "cid", res.Cid, "path", res.Path, "size", res.Size, "type", res.Type)

	u.record(ctx, &model.Receipt{
		Kind: string(entity.EventUpload),
		Ref:  res.Cid,
		Path: res.Path,
		Size: res.Size,
		Type: res.Type,
	})

	return res, nil
}
