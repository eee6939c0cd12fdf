package notification

import (
	"context"

	"github.com/google/uuid"
)

type Kind string

const (
	// KindMatchCreated tells a developer a new match exists for them.
	KindMatchCreated Kind = "match_created"
	// KindCustomerInterested tells a developer a customer expressed interest.
	KindCustomerInterested Kind = "customer_interested"
	// KindMutualMatch tells a customer the developer approved and the match
	// is now mutual.
	KindMutualMatch Kind = "mutual_match"
)

type Event struct {
	RecipientUserID uuid.UUID `json:"recipient_user_id"`
	MatchID         uuid.UUID `json:"match_id"`
	Kind            Kind      `json:"kind"`
}

// Notifier delivers lifecycle events to the recipient. Delivery is best
// effort: implementations log failures and never propagate them, so a dead
// sink cannot fail the state transition that triggered it.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}
