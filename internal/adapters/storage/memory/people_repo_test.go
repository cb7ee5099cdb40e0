package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-assistant/internal/domain/people"
	"pet-assistant/internal/domain/persistence"
)

func TestPeopleRepo_SaveAndGet_Owner(t *testing.T) {
	repo := NewPeopleRepo(NewStore())
	ctx := context.Background()

	saved, err := repo.Save(ctx, people.Person{
		Name:         "Alice",
		TaxID:        "111.222.333-44",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$digest",
		Phones:       []string{"555-0001", "555-0002"},
		Role:         people.Role{Kind: people.RoleOwner},
	})
	require.NoError(t, err)
	require.Positive(t, saved.ID)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, []string{"555-0001", "555-0002"}, got.Phones)
	assert.Equal(t, people.RoleOwner, got.Role.Kind)
	assert.Empty(t, got.PasswordHash, "GetByID must not expose the password hash")
}

func TestPeopleRepo_SaveAndGet_Veterinarian(t *testing.T) {
	repo := NewPeopleRepo(NewStore())
	ctx := context.Background()

	saved, err := repo.Save(ctx, people.Person{
		Name:  "Dr. Carol",
		Email: "carol@clinic.example",
		Role:  people.Role{Kind: people.RoleVeterinarian, LicenseNumber: "CRMV-1234"},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, people.RoleVeterinarian, got.Role.Kind)
	assert.Equal(t, "CRMV-1234", got.Role.LicenseNumber)
}

func TestPeopleRepo_Save_UnknownRole(t *testing.T) {
	repo := NewPeopleRepo(NewStore())

	_, err := repo.Save(context.Background(), people.Person{
		Name: "Nobody",
		Role: people.Role{Kind: "ghost"},
	})
	assert.ErrorIs(t, err, persistence.ErrInvalidInput)
}

func TestPeopleRepo_GetByEmail_CarriesHash(t *testing.T) {
	repo := NewPeopleRepo(NewStore())
	ctx := context.Background()

	_, err := repo.Save(ctx, people.Person{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$digest",
		Role:         people.Role{Kind: people.RoleOwner},
	})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$digest", got.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestPeopleRepo_Update_BaseFieldsOnly(t *testing.T) {
	repo := NewPeopleRepo(NewStore())
	ctx := context.Background()

	saved, err := repo.Save(ctx, people.Person{
		Name:   "Alice",
		Email:  "alice@example.com",
		Phones: []string{"555-0001"},
		Role:   people.Role{Kind: people.RoleOwner},
	})
	require.NoError(t, err)

	saved.Name = "Alice Smith"
	saved.Phones = []string{"999-9999"} // must be ignored
	require.NoError(t, repo.Update(ctx, saved))

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.Name)
	assert.Equal(t, []string{"555-0001"}, got.Phones)

	assert.ErrorIs(t, repo.Update(ctx, people.Person{ID: 999}), persistence.ErrNotFound)
}

func TestPeopleRepo_Delete_Twice(t *testing.T) {
	repo := NewPeopleRepo(NewStore())
	ctx := context.Background()

	saved, err := repo.Save(ctx, people.Person{
		Name: "Alice",
		Role: people.Role{Kind: people.RoleOwner},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), persistence.ErrNotFound)
}
