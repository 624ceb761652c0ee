package broker

import "context"

// Publisher hands relay events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}
