package auth

import (
	"context"
	"errors"

	"github.com/costeam/cos-backend/internal/auth/dto"
)

var (
	ErrEmailRegistered = errors.New("Email already registered and exists")
	ErrInvalidOTP      = errors.New("Invalid Otp")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("Invalid Email or Password")
)

type UseCase interface {
	// CreateOTP generates a sign-up code, emails it best-effort and stores it,
	// replacing any earlier code for the same address.
	CreateOTP(ctx context.Context, email string) error

	// VerifyOTP succeeds only when email and code match a stored record; the
	// record is deleted on success so the code is single-use.
	VerifyOTP(ctx context.Context, email, code string) error

	Register(ctx context.Context, input *dto.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
