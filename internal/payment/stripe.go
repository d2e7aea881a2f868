// Package payment implements the checkout.Gateway against Stripe's hosted
// Checkout product.
package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"

	"github.com/costeam/cos-backend/config"
	"github.com/costeam/cos-backend/internal/checkout"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg *config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, input *checkout.CreateSessionInput) (*checkout.Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(input.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(input.CustomerEmail),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(input.SuccessURL),
		CancelURL:          stripe.String(input.CancelURL),
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &checkout.Session{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, id string) (*checkout.SessionDetails, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	s, err := g.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, err
	}

	details := &checkout.SessionDetails{
		ID:            s.ID,
		CustomerEmail: s.CustomerEmail,
	}
	if s.LineItems != nil {
		for _, li := range s.LineItems.Data {
			item := checkout.PurchasedLineItem{
				Description: li.Description,
				Quantity:    li.Quantity,
			}
			if li.Price != nil {
				item.UnitAmount = li.Price.UnitAmount
			}
			details.LineItems = append(details.LineItems, item)
		}
	}
	return details, nil
}

func (g *StripeGateway) VerifySignature(payload []byte, sigHeader string) error {
	if g.webhookSecret == "" {
		return nil
	}
	_, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	return err
}
