package merch

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, merch *model.Merch) error
	FindByID(ctx context.Context, id string) (*model.Merch, error)
	FindByName(ctx context.Context, name string) (*model.Merch, error)
	FindAll(ctx context.Context) ([]model.Merch, error)
	Update(ctx context.Context, merch *model.Merch) error
	Delete(ctx context.Context, id string) error

	// DecrementQuantityByName applies a single atomic quantity decrement to
	// the item with the given name. It does not floor at zero; concurrent or
	// redelivered purchases can drive the quantity negative.
	DecrementQuantityByName(ctx context.Context, name string, qty int64) error
}
