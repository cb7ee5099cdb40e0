package trainers

// Trainer is a certified service-animal trainer.
type Trainer struct {
	ID                  int64
	Name                string
	TaxID               string
	CertificationNumber string
}
