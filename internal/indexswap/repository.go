package indexswap

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

// DuplicateKey is the composite natural key of a swap request.
type DuplicateKey struct {
	StudentName string
	ModuleName  string
	ModuleCode  string
	HaveIndex   string
	WantIndex   string
}

type Repository interface {
	Create(ctx context.Context, swap *model.IndexSwap) error
	FindByID(ctx context.Context, id string) (*model.IndexSwap, error)
	FindDuplicate(ctx context.Context, key DuplicateKey) (*model.IndexSwap, error)
	FindAll(ctx context.Context) ([]model.IndexSwap, error)
	Update(ctx context.Context, swap *model.IndexSwap) error
	Delete(ctx context.Context, id string) error
}
