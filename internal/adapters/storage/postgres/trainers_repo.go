package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/trainers"
)

type TrainersRepo struct {
	db *DB
}

func NewTrainersRepo(db *DB) *TrainersRepo {
	return &TrainersRepo{db: db}
}

func (r *TrainersRepo) Save(ctx context.Context, t trainers.Trainer) (trainers.Trainer, error) {
	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO trainers (name, tax_id, certification_number)
		VALUES ($1, $2, $3)
		RETURNING id
	`, t.Name, t.TaxID, t.CertificationNumber).Scan(&t.ID)
	if err != nil {
		return trainers.Trainer{}, fmt.Errorf("insert trainer: %w", err)
	}
	return t, nil
}

func (r *TrainersRepo) GetByID(ctx context.Context, id int64) (trainers.Trainer, error) {
	var t trainers.Trainer
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT id, name, tax_id, certification_number FROM trainers WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.TaxID, &t.CertificationNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trainers.Trainer{}, persistence.ErrNotFound
		}
		return trainers.Trainer{}, fmt.Errorf("get trainer: %w", err)
	}
	return t, nil
}

func (r *TrainersRepo) List(ctx context.Context) ([]trainers.Trainer, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT id, name, tax_id, certification_number FROM trainers ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	out := make([]trainers.Trainer, 0)
	for rows.Next() {
		var t trainers.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.TaxID, &t.CertificationNumber); err != nil {
			return nil, fmt.Errorf("list trainers: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TrainersRepo) Update(ctx context.Context, t trainers.Trainer) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE trainers SET name = $2, tax_id = $3, certification_number = $4 WHERE id = $1
	`, t.ID, t.Name, t.TaxID, t.CertificationNumber)
	if err != nil {
		return fmt.Errorf("update trainer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *TrainersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
