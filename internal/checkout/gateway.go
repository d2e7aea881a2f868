package checkout

import "context"

// SessionLineItem is a line item sent to the payment gateway when opening a
// hosted session. UnitAmount is in minor currency units.
type SessionLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type CreateSessionInput struct {
	CustomerEmail string
	Currency      string
	LineItems     []SessionLineItem
	SuccessURL    string
	CancelURL     string
}

type Session struct {
	ID  string
	URL string
}

// PurchasedLineItem is an authoritative line item as reported back by the
// gateway. Description carries the product name the session was created with.
type PurchasedLineItem struct {
	Description string
	UnitAmount  int64
	Quantity    int64
}

type SessionDetails struct {
	ID            string
	CustomerEmail string
	LineItems     []PurchasedLineItem
}

// Gateway is the hosted-payment collaborator. RetrieveSession must expand
// line items so the webhook path never has to trust payload-embedded data.
type Gateway interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*SessionDetails, error)

	// VerifySignature checks the gateway signature over the raw webhook body.
	// Implementations without a configured secret accept every payload.
	VerifySignature(payload []byte, sigHeader string) error
}
