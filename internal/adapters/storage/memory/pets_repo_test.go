package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-assistant/internal/domain/people"
	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/pets"
)

func newOwner(t *testing.T, store *Store, name string) people.Person {
	t.Helper()
	p, err := NewPeopleRepo(store).Save(context.Background(), people.Person{
		Name: name,
		Role: people.Role{Kind: people.RoleOwner},
	})
	require.NoError(t, err)
	return p
}

func TestPetsRepo_SaveAndGet_PlainPet(t *testing.T) {
	store := NewStore()
	repo := NewPetsRepo(store)
	ctx := context.Background()

	owner := newOwner(t, store, "Alice")

	saved, err := repo.Save(ctx, pets.Pet{
		Name:      "Rex",
		Species:   "dog",
		Breed:     "labrador",
		BirthDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		OwnerID:   owner.ID,
	})
	require.NoError(t, err)
	require.Positive(t, saved.ID)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.False(t, got.IsServiceAnimal())

	byOwner, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, saved.ID, byOwner[0].ID)
}

func TestPetsRepo_SaveAndGet_ServiceAnimal(t *testing.T) {
	store := NewStore()
	repo := NewPetsRepo(store)
	ctx := context.Background()

	owner := newOwner(t, store, "Alice")

	saved, err := repo.Save(ctx, pets.Pet{
		Name:    "Max",
		Species: "dog",
		OwnerID: owner.ID,
		Service: &pets.ServiceRecord{
			RegistrationNumber: "REG-1",
			Status:             pets.StatusActive,
		},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	require.True(t, got.IsServiceAnimal())
	assert.Equal(t, "REG-1", got.Service.RegistrationNumber)
	assert.Equal(t, pets.StatusActive, got.Service.Status)
}

func TestPetsRepo_Save_InvalidOwnerStoresNothing(t *testing.T) {
	store := NewStore()
	repo := NewPetsRepo(store)
	ctx := context.Background()

	before, err := repo.ListAll(ctx)
	require.NoError(t, err)

	_, err = repo.Save(ctx, pets.Pet{Name: "Rex", Species: "dog", OwnerID: 0})
	assert.ErrorIs(t, err, persistence.ErrInvalidInput)

	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "failed save must leave no pet row")
}

func TestPetsRepo_DeleteOwner_CascadesOwnership(t *testing.T) {
	store := NewStore()
	petsRepo := NewPetsRepo(store)
	peopleRepo := NewPeopleRepo(store)
	ctx := context.Background()

	alice := newOwner(t, store, "Alice")

	rex, err := petsRepo.Save(ctx, pets.Pet{Name: "Rex", Species: "dog", OwnerID: alice.ID})
	require.NoError(t, err)

	byOwner, err := petsRepo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)

	require.NoError(t, peopleRepo.Delete(ctx, alice.ID))

	byOwner, err = petsRepo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, byOwner)

	_, ok := store.OwnerOf(rex.ID)
	assert.False(t, ok, "ownership row must cascade with the owner")
}

func TestPetsRepo_Update_KeepsServiceRecordAndOwner(t *testing.T) {
	store := NewStore()
	repo := NewPetsRepo(store)
	ctx := context.Background()

	owner := newOwner(t, store, "Alice")

	saved, err := repo.Save(ctx, pets.Pet{
		Name:    "Max",
		Species: "dog",
		OwnerID: owner.ID,
		Service: &pets.ServiceRecord{RegistrationNumber: "REG-1", Status: pets.StatusActive},
	})
	require.NoError(t, err)

	saved.Name = "Maximus"
	saved.Service = nil // must be ignored
	require.NoError(t, repo.Update(ctx, saved))

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maximus", got.Name)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.True(t, got.IsServiceAnimal())
}

func TestPetsRepo_Delete_Twice(t *testing.T) {
	store := NewStore()
	repo := NewPetsRepo(store)
	ctx := context.Background()

	owner := newOwner(t, store, "Alice")
	saved, err := repo.Save(ctx, pets.Pet{Name: "Rex", Species: "dog", OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), persistence.ErrNotFound)
}
