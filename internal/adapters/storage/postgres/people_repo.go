package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-assistant/internal/domain/people"
	"pet-assistant/internal/domain/persistence"
)

type PeopleRepo struct {
	db *DB
}

func NewPeopleRepo(db *DB) *PeopleRepo {
	return &PeopleRepo{db: db}
}

func (r *PeopleRepo) Save(ctx context.Context, p people.Person) (people.Person, error) {
	switch p.Role.Kind {
	case people.RoleOwner, people.RoleVeterinarian:
	default:
		return people.Person{}, fmt.Errorf("save person: role %q: %w", p.Role.Kind, persistence.ErrInvalidInput)
	}

	err := r.db.inTx(ctx, "people.save", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO people (name, tax_id, email, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			p.Name, p.TaxID, p.Email, toNullString(p.PasswordHash),
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert person: %w", err)
		}

		for _, phone := range p.Phones {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO person_phones (person_id, phone) VALUES ($1, $2)
			`, p.ID, phone); err != nil {
				return fmt.Errorf("insert phone: %w", err)
			}
		}

		if p.Role.Kind == people.RoleVeterinarian {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO veterinarians (person_id, license_number) VALUES ($1, $2)
			`, p.ID, p.Role.LicenseNumber); err != nil {
				return fmt.Errorf("insert veterinarian: %w", err)
			}
		} else {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO owners (person_id) VALUES ($1)
			`, p.ID); err != nil {
				return fmt.Errorf("insert owner: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return people.Person{}, err
	}
	return p, nil
}

func (r *PeopleRepo) GetByID(ctx context.Context, id int64) (people.Person, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT p.id, p.name, p.tax_id, p.email, v.license_number, ph.phone
		FROM people p
		LEFT JOIN veterinarians v ON v.person_id = p.id
		LEFT JOIN person_phones ph ON ph.person_id = p.id
		WHERE p.id = $1
	`, id)
	if err != nil {
		return people.Person{}, fmt.Errorf("get person: %w", err)
	}
	defer rows.Close()

	return collectPerson(rows, false)
}

func (r *PeopleRepo) GetByEmail(ctx context.Context, email string) (people.Person, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT p.id, p.name, p.tax_id, p.email, v.license_number, ph.phone, p.password_hash
		FROM people p
		LEFT JOIN veterinarians v ON v.person_id = p.id
		LEFT JOIN person_phones ph ON ph.person_id = p.id
		WHERE p.email = $1
	`, email)
	if err != nil {
		return people.Person{}, fmt.Errorf("get person by email: %w", err)
	}
	defer rows.Close()

	return collectPerson(rows, true)
}

func (r *PeopleRepo) List(ctx context.Context) ([]people.Person, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT p.id, p.name, p.tax_id, p.email, v.license_number
		FROM people p
		LEFT JOIN veterinarians v ON v.person_id = p.id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	out := make([]people.Person, 0)
	for rows.Next() {
		var p people.Person
		var license sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.TaxID, &p.Email, &license); err != nil {
			return nil, fmt.Errorf("list people: %w", err)
		}
		p.Role = roleFromLicense(license)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PeopleRepo) Update(ctx context.Context, p people.Person) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE people SET name = $2, tax_id = $3, email = $4 WHERE id = $1
	`, p.ID, p.Name, p.TaxID, p.Email)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *PeopleRepo) Delete(ctx context.Context, id int64) error {
	// Phones, specialization rows and ownership links go with the person via
	// ON DELETE CASCADE.
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

// roleFromLicense is the single place mapping specialization columns to a
// role: a joined license number means veterinarian, its absence means owner.
func roleFromLicense(license sql.NullString) people.Role {
	if license.Valid {
		return people.Role{Kind: people.RoleVeterinarian, LicenseNumber: license.String}
	}
	return people.Role{Kind: people.RoleOwner}
}

// collectPerson folds the person/phone join rows (one per phone, or a single
// row with a null phone) into one person.
func collectPerson(rows *sql.Rows, withHash bool) (people.Person, error) {
	var p people.Person
	found := false

	for rows.Next() {
		var (
			id              int64
			name, tax, mail string
			license         sql.NullString
			phone           sql.NullString
			hash            sql.NullString
		)

		dest := []any{&id, &name, &tax, &mail, &license, &phone}
		if withHash {
			dest = append(dest, &hash)
		}
		if err := rows.Scan(dest...); err != nil {
			return people.Person{}, fmt.Errorf("scan person: %w", err)
		}

		if !found {
			found = true
			p.ID = id
			p.Name = name
			p.TaxID = tax
			p.Email = mail
			p.Role = roleFromLicense(license)
			if withHash && hash.Valid {
				p.PasswordHash = hash.String
			}
			p.Phones = make([]string, 0)
		}
		if phone.Valid {
			p.Phones = append(p.Phones, phone.String)
		}
	}
	if err := rows.Err(); err != nil {
		return people.Person{}, err
	}
	if !found {
		return people.Person{}, persistence.ErrNotFound
	}
	return p, nil
}
