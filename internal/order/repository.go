package order

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByEmail(ctx context.Context, email string) ([]model.Order, error)
}
