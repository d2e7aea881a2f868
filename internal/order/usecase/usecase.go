package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/model"
	"github.com/costeam/cos-backend/internal/order"
)

type orderUseCase struct {
	repo   order.Repository
	logger *zap.Logger
}

func NewOrderUseCase(repo order.Repository, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *orderUseCase) RecordOrder(ctx context.Context, email string, items []model.OrderItem) (*model.Order, error) {
	o := &model.Order{
		ID:        uuid.New().String(),
		Email:     email,
		Items:     items,
		Status:    order.StatusProcessing,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	uc.logger.Info("order recorded", zap.String("order_id", o.ID), zap.String("email", email))
	return o, nil
}

func (uc *orderUseCase) ListOrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return uc.repo.FindByEmail(ctx, email)
}
