package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/entity"
	"diskrelay/internal/domain/model"
	"diskrelay/internal/domain/repository/broker"
	"diskrelay/internal/domain/repository/database"
	"diskrelay/pkg/logger"
)

// recorder journals and announces completed actions. Either side may be nil,
// which disables it. Failures are logged and never reach the caller: the
// action they describe has already happened.
type recorder struct {
	writer    database.Writer
	publisher broker.Publisher
}

func (r recorder) record(ctx context.Context, receipt *model.Receipt) {
	receipt.ID = uuid.NewString()
	receipt.CreatedAt = time.Now().UTC()
	receipt.Actor = domain.ActorFrom(ctx)

	if r.writer != nil {
		if err := r.writer.Write(ctx, receipt); err != nil {
			logger.Error("couldn't write receipt to journal", "kind", receipt.Kind, "ref", receipt.Ref, "err", err)
		}
	}

	if r.publisher == nil {
		return
	}

	msg, err := json.Marshal(entity.Event{
		ID:    receipt.ID,
		Kind:  entity.EventKind(receipt.Kind),
		Ref:   receipt.Ref,
		Actor: receipt.Actor,
		Time:  receipt.CreatedAt,
	})
	if err != nil {
		logger.Error("couldn't encode event", "err", err)

		return
	}

	if err := r.publisher.Publish(ctx, string(msg)); err != nil {
		logger.Error("couldn't publish event", "kind", receipt.Kind, "ref", receipt.Ref, "err", err)
	}
}
