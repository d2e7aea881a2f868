package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/costeam/cos-backend/internal/indexswap"
	"github.com/costeam/cos-backend/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.IndexSwap) error {
	query := `
        INSERT INTO index_swaps (
            id, student_name, email, module_name, module_code,
            have_index, want_index, phone_number, tele_handle, created_at, updated_at
        )
        VALUES (
            :id, :student_name, :email, :module_name, :module_code,
            :have_index, :want_index, :phone_number, :tele_handle, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.IndexSwap, error) {
	var s model.IndexSwap
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM index_swaps WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindDuplicate(ctx context.Context, key indexswap.DuplicateKey) (*model.IndexSwap, error) {
	var s model.IndexSwap
	query := `
        SELECT * FROM index_swaps
        WHERE student_name = $1 AND module_name = $2 AND module_code = $3
          AND have_index = $4 AND want_index = $5
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &s, query, key.StudentName, key.ModuleName, key.ModuleCode, key.HaveIndex, key.WantIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.IndexSwap, error) {
	swaps := []model.IndexSwap{}
	err := r.DB.SelectContext(ctx, &swaps, `SELECT * FROM index_swaps ORDER BY created_at DESC`)
	return swaps, err
}

func (r *PGRepository) Update(ctx context.Context, s *model.IndexSwap) error {
	query := `
        UPDATE index_swaps
        SET student_name = :student_name,
            email = :email,
            module_name = :module_name,
            module_code = :module_code,
            have_index = :have_index,
            want_index = :want_index,
            phone_number = :phone_number,
            tele_handle = :tele_handle,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM index_swaps WHERE id = $1`, id)
	return err
}
