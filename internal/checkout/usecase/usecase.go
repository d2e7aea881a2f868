package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/checkout"
	"github.com/costeam/cos-backend/internal/mailer"
	"github.com/costeam/cos-backend/internal/merch"
	"github.com/costeam/cos-backend/internal/model"
	"github.com/costeam/cos-backend/internal/order"
)

// Options carry the static session parameters; the redirect targets are
// configuration, never request-derived.
type Options struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

type checkoutUseCase struct {
	gateway   checkout.Gateway
	merchRepo merch.Repository
	orders    order.UseCase
	notifier  mailer.Notifier
	opts      Options
	logger    *zap.Logger
}

func NewCheckoutUseCase(
	gateway checkout.Gateway,
	merchRepo merch.Repository,
	orders order.UseCase,
	notifier mailer.Notifier,
	opts Options,
	log *zap.Logger,
) checkout.UseCase {
	return &checkoutUseCase{
		gateway:   gateway,
		merchRepo: merchRepo,
		orders:    orders,
		notifier:  notifier,
		opts:      opts,
		logger:    log,
	}
}

func (uc *checkoutUseCase) CreateCheckoutSession(ctx context.Context, email string, items []checkout.CartItem) (string, error) {
	lineItems := make([]checkout.SessionLineItem, 0, len(items))
	for _, item := range items {
		m, err := uc.merchRepo.FindByID(ctx, item.ID)
		if err != nil {
			return "", err
		}
		if m == nil {
			return "", fmt.Errorf("%w: %s", checkout.ErrItemNotFound, item.ID)
		}

		// Price and name from the catalog row, never from the client.
		lineItems = append(lineItems, checkout.SessionLineItem{
			Name:       m.Name,
			UnitAmount: int64(math.Round(m.Price * 100)),
			Quantity:   item.Quantity,
		})
	}

	session, err := uc.gateway.CreateSession(ctx, &checkout.CreateSessionInput{
		CustomerEmail: email,
		Currency:      uc.opts.Currency,
		LineItems:     lineItems,
		SuccessURL:    uc.opts.SuccessURL,
		CancelURL:     uc.opts.CancelURL,
	})
	if err != nil {
		// Surface the gateway's error verbatim; no retry, no backoff.
		return "", err
	}
	return session.URL, nil
}

// gatewayEvent deliberately captures nothing but the event kind and session
// identifier; all other payload fields are untrusted and ignored.
type gatewayEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (uc *checkoutUseCase) HandleGatewayEvent(ctx context.Context, payload []byte, sigHeader string) error {
	if err := uc.gateway.VerifySignature(payload, sigHeader); err != nil {
		return fmt.Errorf("%w: %v", checkout.ErrBadSignature, err)
	}

	var event gatewayEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("parse webhook payload: %w", err)
	}

	if event.Type != checkout.EventCheckoutCompleted {
		uc.logger.Info("unhandled gateway event type", zap.String("type", event.Type))
		return nil
	}

	session, err := uc.gateway.RetrieveSession(ctx, event.Data.Object.ID)
	if err != nil {
		return fmt.Errorf("retrieve session %s: %w", event.Data.Object.ID, err)
	}

	receipt := ""
	total := 0.0
	orderItems := make([]model.OrderItem, 0, len(session.LineItems))
	for _, li := range session.LineItems {
		unitPrice := float64(li.UnitAmount) / 100
		total += unitPrice * float64(li.Quantity)
		receipt += fmt.Sprintf("<p>%d x %s ($%g)</p>", li.Quantity, li.Description, unitPrice)
		orderItems = append(orderItems, model.OrderItem{
			Name:      li.Description,
			Quantity:  li.Quantity,
			UnitPrice: unitPrice,
		})
	}
	receipt += fmt.Sprintf("<p>Total Amount: $%g</p>", total)

	// Best-effort: a lost confirmation email never fails the webhook.
	if err := uc.notifier.Send(confirmationSubject, confirmationBody(receipt), session.CustomerEmail); err != nil {
		uc.logger.Error("failed to send purchase confirmation",
			zap.String("session_id", session.ID),
			zap.String("email", session.CustomerEmail),
			zap.Error(err),
		)
	}

	// Items are matched by product name. There is no per-session ledger, so
	// a redelivered event decrements again.
	for _, li := range session.LineItems {
		if err := uc.merchRepo.DecrementQuantityByName(ctx, li.Description, li.Quantity); err != nil {
			uc.logger.Error("failed to decrement merch quantity",
				zap.String("session_id", session.ID),
				zap.String("name", li.Description),
				zap.Int64("quantity", li.Quantity),
				zap.Error(err),
			)
		}
	}

	if _, err := uc.orders.RecordOrder(ctx, session.CustomerEmail, orderItems); err != nil {
		uc.logger.Error("failed to record order",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	return nil
}

const confirmationSubject = "Confirmation of Payment of Merchandise"

func confirmationBody(receipt string) string {
	return fmt.Sprintf(`
        <div
            class="container"
            style="max-width: 90%%; margin: auto; padding-top: 20px"
        >
            <h2>Welcome to COS.</h2>
            <h4>You have succesfully completed a purchase with us!</h4>
            <p>Here are the details</p>
            %s
        </div>`, receipt)
}
