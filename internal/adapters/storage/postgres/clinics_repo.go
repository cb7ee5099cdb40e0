package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/clinics"
	"pet-assistant/internal/domain/persistence"
)

type ClinicsRepo struct {
	db *DB
}

func NewClinicsRepo(db *DB) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

func (r *ClinicsRepo) Save(ctx context.Context, c clinics.Clinic) (clinics.Clinic, error) {
	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO clinics (name, email, street, number, district, city, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, c.Name, c.Email, c.Street, c.Number, c.District, c.City, c.PostalCode).Scan(&c.ID)
	if err != nil {
		return clinics.Clinic{}, fmt.Errorf("insert clinic: %w", err)
	}
	return c, nil
}

func (r *ClinicsRepo) GetByID(ctx context.Context, id int64) (clinics.Clinic, error) {
	var c clinics.Clinic
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT id, name, email, street, number, district, city, postal_code
		FROM clinics WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Street, &c.Number, &c.District, &c.City, &c.PostalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clinics.Clinic{}, persistence.ErrNotFound
		}
		return clinics.Clinic{}, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (r *ClinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT id, name, email, street, number, district, city, postal_code
		FROM clinics ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()

	out := make([]clinics.Clinic, 0)
	for rows.Next() {
		var c clinics.Clinic
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Street, &c.Number, &c.District, &c.City, &c.PostalCode); err != nil {
			return nil, fmt.Errorf("list clinics: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE clinics
		SET name = $2, email = $3, street = $4, number = $5, district = $6, city = $7, postal_code = $8
		WHERE id = $1
	`, c.ID, c.Name, c.Email, c.Street, c.Number, c.District, c.City, c.PostalCode)
	if err != nil {
		return fmt.Errorf("update clinic: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *ClinicsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete clinic: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
