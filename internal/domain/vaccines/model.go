package vaccines

// Vaccine is a vaccine kind (e.g. rabies, attenuated).
type Vaccine struct {
	ID   int64
	Name string
	Type string
}
