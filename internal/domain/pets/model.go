package pets

import "time"

// ServiceRecord holds the fields specific to a service animal. Status is
// free-form in the store; typical values below.
type ServiceRecord struct {
	RegistrationNumber string
	Status             string
}

const (
	StatusActive     = "active"
	StatusInTraining = "in_training"
	StatusRetired    = "retired"
)

// Pet is a registered pet. Service is nil for a plain pet and non-nil for a
// service animal; that null-ness is the only discriminator, both here and in
// the store (there is no stored type flag). OwnerID references the owning
// person through the ownership join relation, fixed at creation time.
type Pet struct {
	ID        int64
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time

	OwnerID int64

	Service *ServiceRecord
}

// IsServiceAnimal reports whether the pet carries a service record.
func (p Pet) IsServiceAnimal() bool { return p.Service != nil }
