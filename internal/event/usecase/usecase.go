package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/event"
	"github.com/costeam/cos-backend/internal/event/dto"
	"github.com/costeam/cos-backend/internal/model"
)

type eventUseCase struct {
	repo   event.Repository
	logger *zap.Logger
}

func NewEventUseCase(repo event.Repository, log *zap.Logger) event.UseCase {
	return &eventUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *eventUseCase) CreateEvent(ctx context.Context, input *dto.CreateEventInput) (*model.Event, error) {
	duplicate, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, event.ErrDuplicateName
	}

	now := time.Now()
	e := &model.Event{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if input.Description != "" {
		e.Description = &input.Description
	}
	if input.Time != "" {
		e.Time = &input.Time
	}
	if input.PhotoURL != "" {
		e.PhotoURL = &input.PhotoURL
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *eventUseCase) ListEvents(ctx context.Context) ([]model.Event, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *eventUseCase) UpdateEvent(ctx context.Context, input *dto.UpdateEventInput) (*model.Event, error) {
	e, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, event.ErrNotFound
	}

	// Name uniqueness is only re-checked when the name actually changed.
	if input.Name != e.Name {
		duplicate, err := uc.repo.FindByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, event.ErrDuplicateName
		}
	}

	e.Name = input.Name
	e.StartDate = input.StartDate
	e.EndDate = input.EndDate
	e.Description = nil
	if input.Description != "" {
		e.Description = &input.Description
	}
	e.Time = nil
	if input.Time != "" {
		e.Time = &input.Time
	}
	e.PhotoURL = nil
	if input.PhotoURL != "" {
		e.PhotoURL = &input.PhotoURL
	}
	e.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *eventUseCase) DeleteEvent(ctx context.Context, id string) error {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return event.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("event deleted", zap.String("event_id", id))
	return nil
}
