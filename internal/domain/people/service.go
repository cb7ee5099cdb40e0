package people

import (
	"context"
	"errors"
	"strings"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/ports/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

type RegisterOwnerInput struct {
	Name     string
	TaxID    string
	Email    string
	Password string
	Phones   []string
}

// RegisterOwner hashes the plaintext password and stores the person with the
// owner specialization. The plaintext is never persisted.
func (s *Service) RegisterOwner(ctx context.Context, in RegisterOwnerInput) (Person, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Person{}, persistence.ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return Person{}, persistence.ErrInvalidInput
	}
	if in.Password == "" {
		return Person{}, persistence.ErrInvalidInput
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Person{}, err
	}

	p := Person{
		Name:         strings.TrimSpace(in.Name),
		TaxID:        strings.TrimSpace(in.TaxID),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: digest,
		Phones:       trimPhones(in.Phones),
		Role:         Role{Kind: RoleOwner},
	}

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return Person{}, err
	}
	saved.PasswordHash = ""
	return saved, nil
}

type RegisterVeterinarianInput struct {
	Name          string
	TaxID         string
	Email         string
	LicenseNumber string
	Phones        []string
}

// RegisterVeterinarian stores a veterinarian. Veterinarians do not log in,
// so no password is taken and the stored hash stays empty.
func (s *Service) RegisterVeterinarian(ctx context.Context, in RegisterVeterinarianInput) (Person, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Person{}, persistence.ErrInvalidInput
	}
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return Person{}, persistence.ErrInvalidInput
	}

	p := Person{
		Name:   strings.TrimSpace(in.Name),
		TaxID:  strings.TrimSpace(in.TaxID),
		Email:  strings.TrimSpace(in.Email),
		Phones: trimPhones(in.Phones),
		Role: Role{
			Kind:          RoleVeterinarian,
			LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		},
	}

	return s.repo.Save(ctx, p)
}

// Login resolves the person by email and checks the password against the
// stored hash. The returned person never carries the hash.
func (s *Service) Login(ctx context.Context, email, password string) (Person, error) {
	p, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return Person{}, err
	}

	if !s.hasher.Verify(password, p.PasswordHash) {
		return Person{}, ErrInvalidCredentials
	}

	p.PasswordHash = ""
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, p Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return persistence.ErrInvalidInput
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func trimPhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, ph := range phones {
		ph = strings.TrimSpace(ph)
		if ph == "" {
			continue
		}
		out = append(out, ph)
	}
	return out
}
