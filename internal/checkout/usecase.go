package checkout

import (
	"context"
	"errors"
)

// EventCheckoutCompleted is the only gateway event kind that is processed;
// every other kind is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrItemNotFound fails the whole session request when any cart entry
	// does not resolve against the catalog.
	ErrItemNotFound = errors.New("no such merch exists in the catalog")

	// ErrBadSignature rejects a webhook payload whose gateway signature does
	// not verify against the raw body.
	ErrBadSignature = errors.New("webhook signature verification failed")
)

// CartItem is a client-submitted cart entry. Only the identifier and count
// are taken from the client; name and price always come from the catalog.
type CartItem struct {
	ID       string
	Quantity int64
}

type UseCase interface {
	// CreateCheckoutSession resolves the cart against the catalog, opens a
	// hosted gateway session and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, email string, items []CartItem) (string, error)

	// HandleGatewayEvent processes a raw webhook body. Only the event kind
	// and session identifier are trusted from the payload; everything else
	// is re-fetched from the gateway.
	HandleGatewayEvent(ctx context.Context, payload []byte, sigHeader string) error
}
