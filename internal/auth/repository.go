package auth

import (
	"context"

	"github.com/costeam/cos-backend/internal/model"
)

type Repository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)

	// UpsertOTP replaces any pending code for the email.
	UpsertOTP(ctx context.Context, otp *model.OTP) error
	FindOTP(ctx context.Context, email, code string) (*model.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}
