package skills

// Skill is a trainable ability a service credential can attest to
// (guide work, medical alert, mobility support, ...).
type Skill struct {
	ID          int64
	Description string
}
