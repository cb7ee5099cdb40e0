package memory

import (
	"sync"

	"pet-assistant/internal/domain/pets"
	"pet-assistant/internal/domain/skills"
)

// Store is the in-memory counterpart of the SQL schema, used by tests and
// dev mode. Relations live in their own maps, mirroring the tables, so the
// cascade rules the schema declares can be applied here by hand.
type Store struct {
	mu sync.RWMutex

	nextID int64

	people       map[int64]personRow
	pets         map[int64]petRow
	ownership    map[int64]int64 // pet id -> owner id
	serviceAnims map[int64]pets.ServiceRecord

	skills map[int64]skills.Skill

	credentials     map[int64]credentialRow
	credentialSkill map[int64][]int64 // credential id -> skill ids
}

func NewStore() *Store {
	return &Store{
		people:          make(map[int64]personRow),
		pets:            make(map[int64]petRow),
		ownership:       make(map[int64]int64),
		serviceAnims:    make(map[int64]pets.ServiceRecord),
		skills:          make(map[int64]skills.Skill),
		credentials:     make(map[int64]credentialRow),
		credentialSkill: make(map[int64][]int64),
	}
}

// id allocates the next identifier. Callers must hold mu.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// OwnerOf reports the ownership row for a pet, if one exists. Tests use it
// to inspect cascades directly.
func (s *Store) OwnerOf(petID int64) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.ownership[petID]
	return owner, ok
}

// CredentialSkillRows reports the association rows stored for a credential.
// Tests use it to verify dedupe and delete behavior.
func (s *Store) CredentialSkillRows(credentialID int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64(nil), s.credentialSkill[credentialID]...)
}
