package credentials

import (
	"context"

	"pet-assistant/internal/domain/skills"
)

// SkillLookup resolves skill ids to full skill records when a credential's
// skill set is loaded back. The skills repository satisfies it.
type SkillLookup interface {
	GetByID(ctx context.Context, id int64) (skills.Skill, error)
}

// Repository persists credentials and their skill associations as one atomic
// unit.
type Repository interface {
	// Save inserts the credential row and one association row per distinct
	// skill id in one transaction. Duplicate skill ids in the input collapse
	// to a single row; an empty skill set is legal. A credential already
	// existing for the animal aborts with a conflict.
	Save(ctx context.Context, c Credential) (Credential, error)

	GetByID(ctx context.Context, id int64) (Credential, error)
	GetByAnimalID(ctx context.Context, animalID int64) (Credential, error)

	// Delete removes the association rows and the credential row in one
	// transaction. Deleting an absent credential reports not-found without
	// side effects, so a second delete is safe.
	Delete(ctx context.Context, id int64) error
}
