package order

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

// StatusProcessing is the default status of a freshly recorded order.
const StatusProcessing = "Processing"

type UseCase interface {
	// RecordOrder persists a denormalized snapshot of a completed purchase.
	// Invoked by the payment webhook, not exposed over HTTP.
	RecordOrder(ctx context.Context, email string, items []model.OrderItem) (*model.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error)
}
