package database

import (
	"context"

	"diskrelay/internal/domain/model"
)

type ReceiptWriter struct {
	db *Database
}

func NewReceiptWriter(db *Database) *ReceiptWriter {
	return &ReceiptWriter{db: db}
}

func (w *ReceiptWriter) Write(ctx context.Context, receipt *model.Receipt) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ReceiptCollection)

	_, err := coll.InsertOne(ctx, receipt)

	return err
}
