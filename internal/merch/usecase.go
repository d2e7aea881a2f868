package merch

import (
	"context"
	"errors"

	"github.com/costeam/cos-backend/internal/merch/dto"
	"github.com/costeam/cos-backend/internal/model"
)

var (
	ErrDuplicateName = errors.New("Merch Name already exists")
	ErrNotFound      = errors.New("No such merch exists")
)

type UseCase interface {
	CreateMerch(ctx context.Context, input *dto.MerchInput) (*model.Merch, error)
	ListMerch(ctx context.Context) ([]model.Merch, error)
	UpdateMerch(ctx context.Context, id string, input *dto.MerchInput) (*model.Merch, error)
	DeleteMerch(ctx context.Context, id string) error
}
