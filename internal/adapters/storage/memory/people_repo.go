package memory

import (
	"context"
	"fmt"

	"pet-assistant/internal/domain/people"
	"pet-assistant/internal/domain/persistence"
)

type personRow struct {
	name, taxID, email string
	passwordHash       string
	phones             []string
	role               people.Role
}

type peopleRepo struct {
	s *Store
}

func NewPeopleRepo(s *Store) people.Repository {
	return &peopleRepo{s: s}
}

func (r *peopleRepo) Save(ctx context.Context, p people.Person) (people.Person, error) {
	switch p.Role.Kind {
	case people.RoleOwner, people.RoleVeterinarian:
	default:
		return people.Person{}, fmt.Errorf("save person: role %q: %w", p.Role.Kind, persistence.ErrInvalidInput)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.id()
	r.s.people[p.ID] = personRow{
		name:         p.Name,
		taxID:        p.TaxID,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		phones:       append([]string(nil), p.Phones...),
		role:         p.Role,
	}
	return p, nil
}

func (r *peopleRepo) GetByID(ctx context.Context, id int64) (people.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.people[id]
	if !ok {
		return people.Person{}, persistence.ErrNotFound
	}
	return row.person(id, false), nil
}

func (r *peopleRepo) GetByEmail(ctx context.Context, email string) (people.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, row := range r.s.people {
		if row.email == email {
			return row.person(id, true), nil
		}
	}
	return people.Person{}, persistence.ErrNotFound
}

func (r *peopleRepo) List(ctx context.Context) ([]people.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]people.Person, 0, len(r.s.people))
	for id, row := range r.s.people {
		p := row.person(id, false)
		p.Phones = nil
		out = append(out, p)
	}
	return out, nil
}

func (r *peopleRepo) Update(ctx context.Context, p people.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.people[p.ID]
	if !ok {
		return persistence.ErrNotFound
	}
	// Base columns only; phones and role stay as stored.
	row.name = p.Name
	row.taxID = p.TaxID
	row.email = p.Email
	r.s.people[p.ID] = row
	return nil
}

func (r *peopleRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.people[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.s.people, id)

	// Ownership links cascade with the person; the pets themselves stay.
	for petID, ownerID := range r.s.ownership {
		if ownerID == id {
			delete(r.s.ownership, petID)
		}
	}
	return nil
}

func (row personRow) person(id int64, withHash bool) people.Person {
	p := people.Person{
		ID:     id,
		Name:   row.name,
		TaxID:  row.taxID,
		Email:  row.email,
		Phones: append([]string(nil), row.phones...),
		Role:   row.role,
	}
	if withHash {
		p.PasswordHash = row.passwordHash
	}
	return p
}
