package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/merch"
	"github.com/costeam/cos-backend/internal/merch/dto"
	"github.com/costeam/cos-backend/internal/model"
)

type merchUseCase struct {
	repo   merch.Repository
	logger *zap.Logger
}

func NewMerchUseCase(repo merch.Repository, log *zap.Logger) merch.UseCase {
	return &merchUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *merchUseCase) CreateMerch(ctx context.Context, input *dto.MerchInput) (*model.Merch, error) {
	duplicate, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, merch.ErrDuplicateName
	}

	now := time.Now()
	m := &model.Merch{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     input.Name,
		Sizes:    input.Sizes,
		Colors:   input.Colors,
		Price:    input.Price,
		Quantity: input.Quantity,
	}
	if input.Description != "" {
		m.Description = &input.Description
	}
	if input.PhotoURL != "" {
		m.PhotoURL = &input.PhotoURL
	}
	if input.Category != "" {
		m.Category = &input.Category
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *merchUseCase) ListMerch(ctx context.Context) ([]model.Merch, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *merchUseCase) UpdateMerch(ctx context.Context, id string, input *dto.MerchInput) (*model.Merch, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, merch.ErrNotFound
	}

	if input.Name != m.Name {
		duplicate, err := uc.repo.FindByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, merch.ErrDuplicateName
		}
	}

	m.Name = input.Name
	m.Sizes = input.Sizes
	m.Colors = input.Colors
	m.Price = input.Price
	m.Quantity = input.Quantity
	m.Description = nil
	if input.Description != "" {
		m.Description = &input.Description
	}
	m.PhotoURL = nil
	if input.PhotoURL != "" {
		m.PhotoURL = &input.PhotoURL
	}
	m.Category = nil
	if input.Category != "" {
		m.Category = &input.Category
	}
	m.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *merchUseCase) DeleteMerch(ctx context.Context, id string) error {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return merch.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("merch deleted", zap.String("merch_id", id), zap.String("name", m.Name))
	return nil
}
