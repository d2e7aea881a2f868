package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/indexswap"
	"github.com/costeam/cos-backend/internal/indexswap/dto"
	"github.com/costeam/cos-backend/internal/model"
)

type indexSwapUseCase struct {
	repo   indexswap.Repository
	logger *zap.Logger
}

func NewIndexSwapUseCase(repo indexswap.Repository, log *zap.Logger) indexswap.UseCase {
	return &indexSwapUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *indexSwapUseCase) CreateIndexSwap(ctx context.Context, input *dto.IndexSwapInput) (*model.IndexSwap, error) {
	duplicate, err := uc.repo.FindDuplicate(ctx, duplicateKey(input))
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, indexswap.ErrDuplicate
	}

	now := time.Now()
	swap := &model.IndexSwap{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StudentName: input.StudentName,
		Email:       input.Email,
		ModuleName:  input.ModuleName,
		ModuleCode:  input.ModuleCode,
		HaveIndex:   input.HaveIndex,
		WantIndex:   input.WantIndex,
	}
	if input.PhoneNumber != "" {
		swap.PhoneNumber = &input.PhoneNumber
	}
	if input.TeleHandle != "" {
		swap.TeleHandle = &input.TeleHandle
	}

	if err := uc.repo.Create(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

func (uc *indexSwapUseCase) ListIndexSwaps(ctx context.Context) ([]model.IndexSwap, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *indexSwapUseCase) UpdateIndexSwap(ctx context.Context, id string, input *dto.IndexSwapInput) (*model.IndexSwap, error) {
	// The composite key is checked without excluding the row being updated:
	// resubmitting the same tuple is a conflict even against itself.
	duplicate, err := uc.repo.FindDuplicate(ctx, duplicateKey(input))
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, indexswap.ErrDuplicate
	}

	swap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, indexswap.ErrNotFound
	}

	swap.StudentName = input.StudentName
	swap.Email = input.Email
	swap.ModuleName = input.ModuleName
	swap.ModuleCode = input.ModuleCode
	swap.HaveIndex = input.HaveIndex
	swap.WantIndex = input.WantIndex
	swap.PhoneNumber = nil
	if input.PhoneNumber != "" {
		swap.PhoneNumber = &input.PhoneNumber
	}
	swap.TeleHandle = nil
	if input.TeleHandle != "" {
		swap.TeleHandle = &input.TeleHandle
	}
	swap.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

func (uc *indexSwapUseCase) DeleteIndexSwap(ctx context.Context, id string) error {
	swap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if swap == nil {
		return indexswap.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("index swap request deleted", zap.String("swap_id", id))
	return nil
}

func duplicateKey(input *dto.IndexSwapInput) indexswap.DuplicateKey {
	return indexswap.DuplicateKey{
		StudentName: input.StudentName,
		ModuleName:  input.ModuleName,
		ModuleCode:  input.ModuleCode,
		HaveIndex:   input.HaveIndex,
		WantIndex:   input.WantIndex,
	}
}
