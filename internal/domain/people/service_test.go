package people

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-assistant/internal/domain/persistence"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Person
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Person{}}
}

func (r *testRepo) Save(ctx context.Context, p Person) (Person, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Person, error) {
	p, ok := r.byID[id]
	if !ok {
		return Person{}, persistence.ErrNotFound
	}
	p.PasswordHash = ""
	return p, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (Person, error) {
	for _, p := range r.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return Person{}, persistence.ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Person, error) {
	out := make([]Person, 0, len(r.byID))
	for _, p := range r.byID {
		p.PasswordHash = ""
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Person) error {
	if _, ok := r.byID[p.ID]; !ok {
		return persistence.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testHasher marks digests instead of hashing so tests can see through them.
type testHasher struct{}

func (testHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (testHasher) Verify(plaintext, digest string) bool  { return "hashed:"+plaintext == digest }

// -------------------------
// Tests
// -------------------------

func TestService_RegisterOwner_HashesPassword(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testHasher{})

	p, err := svc.RegisterOwner(context.Background(), RegisterOwnerInput{
		Name:     "  Alice  ",
		TaxID:    "111.222.333-44",
		Email:    "alice@example.com",
		Password: "s3cret",
		Phones:   []string{" 555-0001 ", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, RoleOwner, p.Role.Kind)
	assert.Equal(t, []string{"555-0001"}, p.Phones)
	assert.Empty(t, p.PasswordHash, "register must not leak the digest")

	stored := repo.byID[p.ID]
	assert.Equal(t, "hashed:s3cret", stored.PasswordHash)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
}

func TestService_RegisterOwner_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterOwnerInput
	}{
		{"empty name", RegisterOwnerInput{Email: "a@b.c", Password: "x"}},
		{"empty email", RegisterOwnerInput{Name: "Alice", Password: "x"}},
		{"empty password", RegisterOwnerInput{Name: "Alice", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newTestRepo(), testHasher{})
			_, err := svc.RegisterOwner(context.Background(), tt.in)
			assert.ErrorIs(t, err, persistence.ErrInvalidInput)
		})
	}
}

func TestService_RegisterVeterinarian(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testHasher{})

	p, err := svc.RegisterVeterinarian(context.Background(), RegisterVeterinarianInput{
		Name:          "Dr. Carol",
		TaxID:         "555.666.777-88",
		Email:         "carol@clinic.example",
		LicenseNumber: "CRMV-1234",
	})
	require.NoError(t, err)

	assert.Equal(t, RoleVeterinarian, p.Role.Kind)
	assert.Equal(t, "CRMV-1234", p.Role.LicenseNumber)
	assert.Empty(t, repo.byID[p.ID].PasswordHash, "veterinarians have no login password")
}

func TestService_RegisterVeterinarian_RequiresLicense(t *testing.T) {
	svc := NewService(newTestRepo(), testHasher{})

	_, err := svc.RegisterVeterinarian(context.Background(), RegisterVeterinarianInput{
		Name:  "Dr. Carol",
		Email: "carol@clinic.example",
	})
	assert.ErrorIs(t, err, persistence.ErrInvalidInput)
}

func TestService_Login(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testHasher{})

	_, err := svc.RegisterOwner(context.Background(), RegisterOwnerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		p, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Name)
		assert.Empty(t, p.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "bob@example.com", "s3cret")
		assert.ErrorIs(t, err, persistence.ErrNotFound)
	})
}
