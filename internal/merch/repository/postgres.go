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

func (r *PGRepository) Create(ctx context.Context, m *model.Merch) error {
	query := `
        INSERT INTO merch (
            id, name, description, sizes, colors, price, quantity,
            photo_url, category, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :sizes, :colors, :price, :quantity,
            :photo_url, :category, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Merch, error) {
	var m model.Merch
	err := r.DB.GetContext(ctx, &m, `SELECT * FROM merch WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Merch, error) {
	var m model.Merch
	err := r.DB.GetContext(ctx, &m, `SELECT * FROM merch WHERE name = $1 LIMIT 1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Merch, error) {
	items := []model.Merch{}
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM merch ORDER BY name ASC`)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, m *model.Merch) error {
	query := `
        UPDATE merch
        SET name = :name,
            description = :description,
            sizes = :sizes,
            colors = :colors,
            price = :price,
            quantity = :quantity,
            photo_url = :photo_url,
            category = :category,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM merch WHERE id = $1`, id)
	return err
}

func (r *PGRepository) DecrementQuantityByName(ctx context.Context, name string, qty int64) error {
	// Single-statement decrement so concurrent webhooks serialize on the row.
	_, err := r.DB.ExecContext(ctx,
		`UPDATE merch SET quantity = quantity - $2, updated_at = now() WHERE name = $1`,
		name, qty,
	)
	return err
}
