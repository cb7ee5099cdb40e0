package credentials

import (
	"context"
	"time"

	"pet-assistant/internal/domain/persistence"
	"pet-assistant/internal/domain/skills"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type IssueInput struct {
	IssuedAt        time.Time
	ExpiresAt       time.Time
	ServiceAnimalID int64
	TrainerID       int64
	Skills          []skills.Skill
}

// Issue creates a credential for a service animal. Skill entries must carry
// ids of existing skills; duplicates are tolerated and collapse in storage.
func (s *Service) Issue(ctx context.Context, in IssueInput) (Credential, error) {
	if in.ServiceAnimalID <= 0 || in.TrainerID <= 0 {
		return Credential{}, persistence.ErrInvalidInput
	}
	if in.IssuedAt.IsZero() || in.ExpiresAt.IsZero() {
		return Credential{}, persistence.ErrInvalidInput
	}
	if in.ExpiresAt.Before(in.IssuedAt) {
		return Credential{}, persistence.ErrInvalidInput
	}

	return s.repo.Save(ctx, Credential{
		IssuedAt:        in.IssuedAt,
		ExpiresAt:       in.ExpiresAt,
		ServiceAnimalID: in.ServiceAnimalID,
		TrainerID:       in.TrainerID,
		Skills:          in.Skills,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Credential, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByAnimal(ctx context.Context, animalID int64) (Credential, error) {
	return s.repo.GetByAnimalID(ctx, animalID)
}

func (s *Service) Revoke(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
