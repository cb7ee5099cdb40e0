package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

// SkillsRepo is the skills store; it also serves as the credential
// repository's skill lookup.
type SkillsRepo struct {
	db *DB
}

func NewSkillsRepo(db *DB) *SkillsRepo {
	return &SkillsRepo{db: db}
}

func (r *SkillsRepo) Save(ctx context.Context, s skills.Skill) (skills.Skill, error) {
	err := r.db.sql.QueryRowContext(ctx, `
		INSERT INTO skills (description) VALUES ($1) RETURNING id
	`, s.Description).Scan(&s.ID)
	if err != nil {
		return skills.Skill{}, fmt.Errorf("insert skill: %w", err)
	}
	return s, nil
}

func (r *SkillsRepo) GetByID(ctx context.Context, id int64) (skills.Skill, error) {
	var s skills.Skill
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT id, description FROM skills WHERE id = $1
	`, id).Scan(&s.ID, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return skills.Skill{}, persistence.ErrNotFound
		}
		return skills.Skill{}, fmt.Errorf("get skill: %w", err)
	}
	return s, nil
}

func (r *SkillsRepo) List(ctx context.Context) ([]skills.Skill, error) {
	rows, err := r.db.sql.QueryContext(ctx, `SELECT id, description FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	out := make([]skills.Skill, 0)
	for rows.Next() {
		var s skills.Skill
		if err := rows.Scan(&s.ID, &s.Description); err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SkillsRepo) Update(ctx context.Context, s skills.Skill) error {
	res, err := r.db.sql.ExecContext(ctx, `
		UPDATE skills SET description = $2 WHERE id = $1
	`, s.ID, s.Description)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func (r *SkillsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
