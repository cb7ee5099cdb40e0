package certificates

import "time"

// Certificate records one vaccine application: which pet received which
// vaccine, by which veterinarian, at which clinic. NextDose is nil when no
// follow-up dose is scheduled.
type Certificate struct {
	ID        int64
	AppliedAt time.Time
	Batch     string
	NextDose  *time.Time

	PetID          int64
	VaccineID      int64
	VeterinarianID int64
	ClinicID       int64
}
