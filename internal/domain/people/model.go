package people

// RoleKind identifies the specialization of a person. The set is closed:
// every stored person is exactly one of these.
type RoleKind string

const (
	RoleOwner        RoleKind = "owner"
	RoleVeterinarian RoleKind = "veterinarian"
)

// Role is the specialization tag carried alongside a Person. LicenseNumber
// is meaningful only when Kind is RoleVeterinarian (the CRMV-style
// professional license).
type Role struct {
	Kind          RoleKind
	LicenseNumber string
}

// Person is a registered person: a pet owner or a veterinarian.
// Phones is owned exclusively by the person and lives/dies with it.
// PasswordHash is populated only on the login lookup path; generic reads
// leave it empty.
type Person struct {
	ID           int64
	Name         string
	TaxID        string
	Email        string
	PasswordHash string
	Phones       []string

	Role Role
}
