package credentials

import (
	"time"

	"pet-assistant/internal/domain/skills"
)

// Credential attests that a service animal was trained by a trainer in a set
// of skills, valid between IssuedAt and ExpiresAt. At most one credential
// exists per service animal.
type Credential struct {
	ID        int64
	IssuedAt  time.Time
	ExpiresAt time.Time

	ServiceAnimalID int64
	TrainerID       int64

	Skills []skills.Skill
}
