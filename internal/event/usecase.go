package event

import (
	"context"
	"errors"

	"github.com/costeam/cos-backend/internal/event/dto"
	"github.com/costeam/cos-backend/internal/model"
)

var (
	ErrDuplicateName = errors.New("Event Name already exists")
	ErrNotFound      = errors.New("No such event exists")
)

type UseCase interface {
	CreateEvent(ctx context.Context, input *dto.CreateEventInput) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, input *dto.UpdateEventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
