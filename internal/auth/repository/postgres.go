package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/costeam/cos-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateUser(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (id, email, password, name, phone_number, is_admin, created_at, updated_at)
        VALUES (:id, :email, :password, :name, :phone_number, :is_admin, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) UpsertOTP(ctx context.Context, otp *model.OTP) error {
	query := `
        INSERT INTO otps (email, code)
        VALUES (:email, :code)
        ON CONFLICT (email)
        DO UPDATE SET code = EXCLUDED.code
    `
	_, err := r.DB.NamedExecContext(ctx, query, otp)
	return err
}

func (r *PGRepository) FindOTP(ctx context.Context, email, code string) (*model.OTP, error) {
	var otp model.OTP
	err := r.DB.GetContext(ctx, &otp, `SELECT * FROM otps WHERE email = $1 AND code = $2 LIMIT 1`, email, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *PGRepository) DeleteOTP(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM otps WHERE email = $1`, email)
	return err
}
