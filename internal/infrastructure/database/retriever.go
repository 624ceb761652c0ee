package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"diskrelay/internal/domain"
	"diskrelay/internal/domain/model"
)

type ReceiptRetriever struct {
	db *Database
}

func NewReceiptRetriever(db *Database) *ReceiptRetriever {
	return &ReceiptRetriever{db: db}
}

// GetByRef returns the newest receipt of kind for ref.
func (r *ReceiptRetriever) GetByRef(ctx context.Context, kind, ref string) (*model.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ReceiptCollection)

	var receipt model.Receipt
	err := coll.FindOne(ctx, bson.M{"kind": kind, "ref": ref},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).Decode(&receipt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}

		return nil, domain.Wrap(domain.KindStorage, err)
	}

	return &receipt, nil
}
