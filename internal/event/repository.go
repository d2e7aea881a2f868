package event

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	FindByName(ctx context.Context, name string) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
}
