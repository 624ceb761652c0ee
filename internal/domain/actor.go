package domain

import "context"

type actorKey struct{}

// WithActor stores the wallet that authorised the request.
func WithActor(ctx context.Context, wallet string) context.Context {
	return context.WithValue(ctx, actorKey{}, wallet)
}

// ActorFrom returns the authorising wallet, or "" when the request was not
// guarded.
func ActorFrom(ctx context.Context) string {
	wallet, _ := ctx.Value(actorKey{}).(string)

	return wallet
}
