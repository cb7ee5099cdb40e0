package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/pets"
)

type PetsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Save(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.inTx(ctx, "pets.save", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO pets (name, species, breed, birth_date)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			p.Name, p.Species, p.Breed, p.BirthDate,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert pet: %w", err)
		}

		if p.OwnerID <= 0 {
			// Rolls the pet insert back; no pet without an owner.
			return fmt.Errorf("owner id %d: %w", p.OwnerID, persistence.ErrInvalidInput)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pet_owners (owner_id, pet_id) VALUES ($1, $2)
		`, p.OwnerID, p.ID); err != nil {
			return fmt.Errorf("insert ownership: %w", err)
		}

		if p.Service != nil {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO service_animals (pet_id, registration_number, status)
				VALUES ($1, $2, $3)
			`, p.ID, p.Service.RegistrationNumber, p.Service.Status); err != nil {
				return fmt.Errorf("insert service animal: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

const petSelect = `
	SELECT p.id, p.name, p.species, p.breed, p.birth_date,
	       po.owner_id, sa.registration_number, sa.status
	FROM pets p
	LEFT JOIN pet_owners po ON po.pet_id = p.id
	LEFT JOIN service_animals sa ON sa.pet_id = p.id
`

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.sql.QueryRowContext(ctx, petSelect+`WHERE p.id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, persistence.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.sql.QueryContext(ctx, petSelect+`WHERE po.owner_id = $1 ORDER BY p.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets by owner: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("list pets by owner: %w", err)
		}
		// The join already filtered on this owner.
		p.OwnerID = ownerID
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.sql.QueryContext(ctx, petSelect+`ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("list pets: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE pets SET name = $2, species = $3, breed = $4, birth_date = $5 WHERE id = $1
	`, p.ID, p.Name, p.Species, p.Breed, p.BirthDate)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	// Ownership, service-animal rows and dependent credentials/certificates
	// go with the pet via ON DELETE CASCADE.
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPet is the single reconstruction point for pet reads: a non-null
// registration number in the joined columns makes the pet a service animal,
// its absence makes it a plain pet. No stored type flag is consulted.
func scanPet(rs rowScanner) (pets.Pet, error) {
	var (
		p           pets.Pet
		owner       sql.NullInt64
		reg, status sql.NullString
	)
	if err := rs.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &owner, &reg, &status); err != nil {
		return pets.Pet{}, err
	}
	if owner.Valid {
		p.OwnerID = owner.Int64
	}
	if reg.Valid {
		p.Service = &pets.ServiceRecord{
			RegistrationNumber: reg.String,
			Status:             status.String,
		}
	}
	return p, nil
}
