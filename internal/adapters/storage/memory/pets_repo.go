package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/pets"
)

type petRow struct {
	name, species, breed string
	birthDate            time.Time
}

type petsRepo struct {
	s *Store
}

func NewPetsRepo(s *Store) pets.Repository {
	return &petsRepo{s: s}
}

func (r *petsRepo) Save(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Same atomicity as the SQL adapter: an invalid owner means nothing is
	// stored, not even the pet row.
	if p.OwnerID <= 0 {
		return pets.Pet{}, fmt.Errorf("owner id %d: %w", p.OwnerID, persistence.ErrInvalidInput)
	}

	p.ID = r.s.id()
	r.s.pets[p.ID] = petRow{
		name:      p.Name,
		species:   p.Species,
		breed:     p.Breed,
		birthDate: p.BirthDate,
	}
	r.s.ownership[p.ID] = p.OwnerID
	if p.Service != nil {
		r.s.serviceAnims[p.ID] = *p.Service
	}
	return p, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, persistence.ErrNotFound
	}
	return r.assemble(id, row), nil
}

func (r *petsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for id, owner := range r.s.ownership {
		if owner != ownerID {
			continue
		}
		row, ok := r.s.pets[id]
		if !ok {
			continue
		}
		out = append(out, r.assemble(id, row))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for id, row := range r.s.pets {
		out = append(out, r.assemble(id, row))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return persistence.ErrNotFound
	}
	// Base columns only; ownership and service record stay as stored.
	r.s.pets[p.ID] = petRow{
		name:      p.Name,
		species:   p.Species,
		breed:     p.Breed,
		birthDate: p.BirthDate,
	}
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.s.pets, id)
	delete(r.s.ownership, id)
	delete(r.s.serviceAnims, id)

	// Credentials reference the service animal and cascade with it.
	for credID, row := range r.s.credentials {
		if row.serviceAnimalID == id {
			delete(r.s.credentials, credID)
			delete(r.s.credentialSkill, credID)
		}
	}
	return nil
}

// assemble rebuilds the pet from its relation maps; the presence of a
// service-animal entry decides the variant. Callers must hold mu.
func (r *petsRepo) assemble(id int64, row petRow) pets.Pet {
	p := pets.Pet{
		ID:        id,
		Name:      row.name,
		Species:   row.species,
		Breed:     row.breed,
		BirthDate: row.birthDate,
		OwnerID:   r.s.ownership[id],
	}
	if svc, ok := r.s.serviceAnims[id]; ok {
		p.Service = &pets.ServiceRecord{
			RegistrationNumber: svc.RegistrationNumber,
			Status:             svc.Status,
		}
	}
	return p
}
