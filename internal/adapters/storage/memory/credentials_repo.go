package memory

import (
	"context"
	"fmt"
	"time"

	"pet-assistant/internal/domain/credentials"
	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

type credentialRow struct {
	issuedAt, expiresAt time.Time
	serviceAnimalID     int64
	trainerID           int64
}

type credentialsRepo struct {
	s *Store
}

func NewCredentialsRepo(s *Store) credentials.Repository {
	return &credentialsRepo{s: s}
}

func (r *credentialsRepo) Save(ctx context.Context, c credentials.Credential) (credentials.Credential, error) {
	if c.ServiceAnimalID <= 0 || c.TrainerID <= 0 {
		return credentials.Credential{}, fmt.Errorf("save credential: %w", persistence.ErrInvalidInput)
	}
	if c.ExpiresAt.Before(c.IssuedAt) {
		return credentials.Credential{}, fmt.Errorf("save credential: expiry before issue: %w", persistence.ErrInvalidInput)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, row := range r.s.credentials {
		if row.serviceAnimalID == c.ServiceAnimalID {
			return credentials.Credential{}, fmt.Errorf("animal %d already has credential %d: %w",
				c.ServiceAnimalID, id, persistence.ErrConflict)
		}
	}

	c.ID = r.s.id()
	r.s.credentials[c.ID] = credentialRow{
		issuedAt:        c.IssuedAt,
		expiresAt:       c.ExpiresAt,
		serviceAnimalID: c.ServiceAnimalID,
		trainerID:       c.TrainerID,
	}

	deduped := make([]skills.Skill, 0, len(c.Skills))
	ids := make([]int64, 0, len(c.Skills))
	seen := make(map[int64]bool, len(c.Skills))
	for _, sk := range c.Skills {
		if seen[sk.ID] {
			continue
		}
		seen[sk.ID] = true
		deduped = append(deduped, sk)
		ids = append(ids, sk.ID)
	}
	r.s.credentialSkill[c.ID] = ids

	c.Skills = deduped
	return c, nil
}

func (r *credentialsRepo) GetByID(ctx context.Context, id int64) (credentials.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.credentials[id]
	if !ok {
		return credentials.Credential{}, persistence.ErrNotFound
	}
	return r.assemble(id, row)
}

func (r *credentialsRepo) GetByAnimalID(ctx context.Context, animalID int64) (credentials.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, row := range r.s.credentials {
		if row.serviceAnimalID == animalID {
			return r.assemble(id, row)
		}
	}
	return credentials.Credential{}, persistence.ErrNotFound
}

func (r *credentialsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.credentials[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.s.credentialSkill, id)
	delete(r.s.credentials, id)
	return nil
}

func (r *credentialsRepo) assemble(id int64, row credentialRow) (credentials.Credential, error) {
	c := credentials.Credential{
		ID:              id,
		IssuedAt:        row.issuedAt,
		ExpiresAt:       row.expiresAt,
		ServiceAnimalID: row.serviceAnimalID,
		TrainerID:       row.trainerID,
		Skills:          make([]skills.Skill, 0),
	}
	for _, sid := range r.s.credentialSkill[id] {
		sk, ok := r.s.skills[sid]
		if !ok {
			return credentials.Credential{}, fmt.Errorf("resolve skill %d: %w", sid, persistence.ErrNotFound)
		}
		c.Skills = append(c.Skills, sk)
	}
	return c, nil
}
