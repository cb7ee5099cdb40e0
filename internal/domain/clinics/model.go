package clinics

// Clinic is a veterinary clinic with its street address.
type Clinic struct {
	ID         int64
	Name       string
	Email      string
	Street     string
	Number     string
	District   string
	City       string
	PostalCode string
}
