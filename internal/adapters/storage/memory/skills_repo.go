package memory

import (
	"context"
	"sort"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

type skillsRepo struct {
	s *Store
}

func NewSkillsRepo(s *Store) skills.Repository {
	return &skillsRepo{s: s}
}

func (r *skillsRepo) Save(ctx context.Context, sk skills.Skill) (skills.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sk.ID = r.s.id()
	r.s.skills[sk.ID] = sk
	return sk, nil
}

func (r *skillsRepo) GetByID(ctx context.Context, id int64) (skills.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sk, ok := r.s.skills[id]
	if !ok {
		return skills.Skill{}, persistence.ErrNotFound
	}
	return sk, nil
}

func (r *skillsRepo) List(ctx context.Context) ([]skills.Skill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]skills.Skill, 0, len(r.s.skills))
	for _, sk := range r.s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *skillsRepo) Update(ctx context.Context, sk skills.Skill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skills[sk.ID]; !ok {
		return persistence.ErrNotFound
	}
	r.s.skills[sk.ID] = sk
	return nil
}

func (r *skillsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skills[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.s.skills, id)

	// Association rows cascade with the skill.
	for credID, ids := range r.s.credentialSkill {
		kept := ids[:0]
		for _, sid := range ids {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		r.s.credentialSkill[credID] = kept
	}
	return nil
}
