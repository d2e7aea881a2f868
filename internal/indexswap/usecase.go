package indexswap

import (
	"context"
	"errors"

	"github.com/costeam/cos-backend/internal/indexswap/dto"
	"github.com/costeam/cos-backend/internal/model"
)

var (
	ErrDuplicate = errors.New("Index Swap request already exists")
	ErrNotFound  = errors.New("No such index swap request exists")
)

type UseCase interface {
	CreateIndexSwap(ctx context.Context, input *dto.IndexSwapInput) (*model.IndexSwap, error)
	ListIndexSwaps(ctx context.Context) ([]model.IndexSwap, error)
	UpdateIndexSwap(ctx context.Context, id string, input *dto.IndexSwapInput) (*model.IndexSwap, error)
	DeleteIndexSwap(ctx context.Context, id string) error
}
