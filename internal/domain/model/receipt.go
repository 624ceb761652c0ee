package model

import "time"

// Receipt is one journal entry for a completed relay action.
type Receipt struct {
	ID        string    `bson:"_id"`
	Kind      string    `bson:"kind"`
	Ref       string    `bson:"ref"`
	Actor     string    `bson:"actor,omitempty"`
	Contract  string    `bson:"contract,omitempty"`
	Method    string    `bson:"method,omitempty"`
	Args      []string  `bson:"args,omitempty"`
	Path      string    `bson:"path,omitempty"`
	Size      int64     `bson:"size,omitempty"`
	Type      string    `bson:"type,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}
