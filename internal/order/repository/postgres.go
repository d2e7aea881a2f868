package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/costeam/cos-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (id, email, items, status, created_at)
        VALUES (:id, :email, :items, :status, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM orders WHERE email = $1 ORDER BY created_at DESC`, email)
	return orders, err
}
