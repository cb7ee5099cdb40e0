package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/certificates"
	"pet-assistant/internal/domain/persistence"
)

type CertificatesRepo struct {
	db *DB
}

func NewCertificatesRepo(db *DB) *CertificatesRepo {
	return &CertificatesRepo{db: db}
}

func (r *CertificatesRepo) Save(ctx context.Context, c certificates.Certificate) (certificates.Certificate, error) {
	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO vaccination_certificates
			(applied_at, batch, next_dose, pet_id, vaccine_id, veterinarian_id, clinic_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		c.AppliedAt, c.Batch, toNullDate(c.NextDose),
		c.PetID, c.VaccineID, c.VeterinarianID, c.ClinicID,
	).Scan(&c.ID)
	if err != nil {
		return certificates.Certificate{}, fmt.Errorf("insert certificate: %w", err)
	}
	return c, nil
}

func (r *CertificatesRepo) GetByID(ctx context.Context, id int64) (certificates.Certificate, error) {
	row := r.db.sql.QueryRowContext(ctx, `
		SELECT id, applied_at, batch, next_dose, pet_id, vaccine_id, veterinarian_id, clinic_id
		FROM vaccination_certificates WHERE id = $1
	`, id)

	c, err := scanCertificate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return certificates.Certificate{}, persistence.ErrNotFound
		}
		return certificates.Certificate{}, fmt.Errorf("get certificate: %w", err)
	}
	return c, nil
}

func (r *CertificatesRepo) ListByPet(ctx context.Context, petID int64) ([]certificates.Certificate, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT id, applied_at, batch, next_dose, pet_id, vaccine_id, veterinarian_id, clinic_id
		FROM vaccination_certificates WHERE pet_id = $1 ORDER BY applied_at
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	out := make([]certificates.Certificate, 0)
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("list certificates: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CertificatesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM vaccination_certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func scanCertificate(rs rowScanner) (certificates.Certificate, error) {
	var c certificates.Certificate
	var next sql.NullTime
	if err := rs.Scan(&c.ID, &c.AppliedAt, &c.Batch, &next,
		&c.PetID, &c.VaccineID, &c.VeterinarianID, &c.ClinicID); err != nil {
		return certificates.Certificate{}, err
	}
	if next.Valid {
		t := next.Time
		c.NextDose = &t
	}
	return c, nil
}
