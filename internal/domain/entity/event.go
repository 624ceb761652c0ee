package entity

import "time"

type EventKind string

const (
	EventProviderApproval EventKind = "provider_approval"
	EventRentalRoles      EventKind = "rental_roles"
	EventUpload           EventKind = "upload"
)

// Event is published after an action has completed. Ref is the transaction
// hash for chain writes and the CID for uploads. Actor is the admin wallet
// that authorised the action, when the wallet guard is on.
type Event struct {
	ID    string    `json:"id"`
	Kind  EventKind `json:"kind"`
	Ref   string    `json:"ref"`
	Actor string    `json:"actor,omitempty"`
	Time  time.Time `json:"time"`
}
