package bcrypt

import (
	"golang.org/x/crypto/bcrypt"

	"pet-assistant/internal/ports/auth"
)

type Hasher struct {
	cost int
}

// NewHasher builds a bcrypt hasher. A cost outside bcrypt's valid range
// falls back to the library default.
func NewHasher(cost int) auth.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
