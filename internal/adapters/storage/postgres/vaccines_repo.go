package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/vaccines"
)

type VaccinesRepo struct {
	db *DB
}

func NewVaccinesRepo(db *DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

func (r *VaccinesRepo) Save(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO vaccines (name, type) VALUES ($1, $2) RETURNING id
	`, v.Name, v.Type).Scan(&v.ID)
	if err != nil {
		return vaccines.Vaccine{}, fmt.Errorf("insert vaccine: %w", err)
	}
	return v, nil
}

func (r *VaccinesRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	var v vaccines.Vaccine
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT id, name, type FROM vaccines WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccines.Vaccine{}, persistence.ErrNotFound
		}
		return vaccines.Vaccine{}, fmt.Errorf("get vaccine: %w", err)
	}
	return v, nil
}

func (r *VaccinesRepo) List(ctx context.Context) ([]vaccines.Vaccine, error) {
	rows, err := r.db.sql.QueryContext(ctx, `SELECT id, name, type FROM vaccines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vaccines: %w", err)
	}
	defer rows.Close()

	out := make([]vaccines.Vaccine, 0)
	for rows.Next() {
		var v vaccines.Vaccine
		if err := rows.Scan(&v.ID, &v.Name, &v.Type); err != nil {
			return nil, fmt.Errorf("list vaccines: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinesRepo) Update(ctx context.Context, v vaccines.Vaccine) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE vaccines SET name = $2, type = $3 WHERE id = $1
	`, v.ID, v.Name, v.Type)
	if err != nil {
		return fmt.Errorf("update vaccine: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *VaccinesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vaccine: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
