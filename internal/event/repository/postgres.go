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

func (r *PGRepository) Create(ctx context.Context, e *model.Event) error {
	query := `
        INSERT INTO events (id, name, description, start_date, end_date, time, photo_url, created_at, updated_at)
        VALUES (:id, :name, :description, :start_date, :end_date, :time, :photo_url, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	err := r.DB.GetContext(ctx, &e, `SELECT * FROM events WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Event, error) {
	var e model.Event
	err := r.DB.GetContext(ctx, &e, `SELECT * FROM events WHERE name = $1 LIMIT 1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	err := r.DB.SelectContext(ctx, &events, `SELECT * FROM events ORDER BY start_date ASC`)
	return events, err
}

func (r *PGRepository) Update(ctx context.Context, e *model.Event) error {
	query := `
        UPDATE events
        SET name = :name,
            description = :description,
            start_date = :start_date,
            end_date = :end_date,
            time = :time,
            photo_url = :photo_url,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, e)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}
