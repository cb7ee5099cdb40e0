package pets

import (
	"context"
	"strings"
	"time"

	"pet-assistant/internal/domain/persistence"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
	OwnerID   int64

	// Service, when set, registers the pet as a service animal.
	Service *ServiceRecord
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, persistence.ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, persistence.ErrInvalidInput
	}
	if in.Service != nil && strings.TrimSpace(in.Service.RegistrationNumber) == "" {
		return Pet{}, persistence.ErrInvalidInput
	}

	p := Pet{
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		OwnerID:   in.OwnerID,
	}
	if in.Service != nil {
		p.Service = &ServiceRecord{
			RegistrationNumber: strings.TrimSpace(in.Service.RegistrationNumber),
			Status:             strings.TrimSpace(in.Service.Status),
		}
	}

	return s.repo.Save(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Update(ctx context.Context, p Pet) error {
	if strings.TrimSpace(p.Name) == "" {
		return persistence.ErrInvalidInput
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
