package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/credentials"
	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

type CredentialsRepo struct {
	db     *DB
	lookup credentials.SkillLookup
}

func NewCredentialsRepo(db *DB, lookup credentials.SkillLookup) *CredentialsRepo {
	return &CredentialsRepo{db: db, lookup: lookup}
}

func (r *CredentialsRepo) Save(ctx context.Context, c credentials.Credential) (credentials.Credential, error) {
	if c.ServiceAnimalID <= 0 || c.TrainerID <= 0 {
		return credentials.Credential{}, fmt.Errorf("save credential: %w", persistence.ErrInvalidInput)
	}
	if c.ExpiresAt.Before(c.IssuedAt) {
		return credentials.Credential{}, fmt.Errorf("save credential: expiry before issue: %w", persistence.ErrInvalidInput)
	}

	deduped := dedupeSkills(c.Skills)

	err := r.db.inTx(ctx, "credentials.save", func(tx *sql.Tx) error {
		// One credential per service animal.
		var existing int64
		err := tx.QueryRowContext(ctx, `
			SELECT id FROM service_credentials WHERE service_animal_id = $1
		`, c.ServiceAnimalID).Scan(&existing)
		if err == nil {
			return fmt.Errorf("animal %d already has credential %d: %w",
				c.ServiceAnimalID, existing, persistence.ErrConflict)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check existing credential: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO service_credentials (issued_at, expires_at, service_animal_id, trainer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			c.IssuedAt, c.ExpiresAt, c.ServiceAnimalID, c.TrainerID,
		).Scan(&c.ID)
		if err != nil {
			return fmt.Errorf("insert credential: %w", err)
		}

		for _, sk := range deduped {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO credential_skills (credential_id, skill_id) VALUES ($1, $2)
			`, c.ID, sk.ID); err != nil {
				return fmt.Errorf("insert credential skill: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return credentials.Credential{}, err
	}

	c.Skills = deduped
	return c, nil
}

func (r *CredentialsRepo) GetByID(ctx context.Context, id int64) (credentials.Credential, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *CredentialsRepo) GetByAnimalID(ctx context.Context, animalID int64) (credentials.Credential, error) {
	return r.get(ctx, `WHERE service_animal_id = $1`, animalID)
}

func (r *CredentialsRepo) get(ctx context.Context, where string, key int64) (credentials.Credential, error) {
	var c credentials.Credential
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT id, issued_at, expires_at, service_animal_id, trainer_id
		FROM service_credentials `+where,
		key,
	).Scan(&c.ID, &c.IssuedAt, &c.ExpiresAt, &c.ServiceAnimalID, &c.TrainerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return credentials.Credential{}, persistence.ErrNotFound
		}
		return credentials.Credential{}, fmt.Errorf("get credential: %w", err)
	}

	set, err := r.loadSkills(ctx, c.ID)
	if err != nil {
		return credentials.Credential{}, err
	}
	c.Skills = set
	return c, nil
}

// loadSkills reads the association rows for the credential and resolves each
// referenced skill through the lookup collaborator.
func (r *CredentialsRepo) loadSkills(ctx context.Context, credentialID int64) ([]skills.Skill, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT skill_id FROM credential_skills WHERE credential_id = $1 ORDER BY skill_id
	`, credentialID)
	if err != nil {
		return nil, fmt.Errorf("load credential skills: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("load credential skills: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	set := make([]skills.Skill, 0, len(ids))
	for _, id := range ids {
		sk, err := r.lookup.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve skill %d: %w", id, err)
		}
		set = append(set, sk)
	}
	return set, nil
}

func (r *CredentialsRepo) Delete(ctx context.Context, id int64) error {
	return r.db.inTx(ctx, "credentials.delete", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM credential_skills WHERE credential_id = $1
		`, id); err != nil {
			return fmt.Errorf("delete credential skills: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM service_credentials WHERE id = $1
		`, id)
		if err != nil {
			return fmt.Errorf("delete credential: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return persistence.ErrNotFound
		}
		return nil
	})
}

// dedupeSkills collapses repeated skill ids, keeping first occurrences in
// input order.
func dedupeSkills(in []skills.Skill) []skills.Skill {
	out := make([]skills.Skill, 0, len(in))
	seen := make(map[int64]bool, len(in))
	for _, sk := range in {
		if seen[sk.ID] {
			continue
		}
		seen[sk.ID] = true
		out = append(out, sk)
	}
	return out
}
