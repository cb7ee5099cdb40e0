package people

import "context"

// Repository persists people together with their phone list and
// specialization row as one atomic unit.
//
// Known gap carried over from the current design: Update writes base columns
// only; phone lists and specialization data (license number) are not
// propagated.
type Repository interface {
	// Save inserts the person, its phones and its specialization row in one
	// transaction and returns the person with the generated id.
	Save(ctx context.Context, p Person) (Person, error)

	// GetByID returns the person with phones and role resolved. The password
	// hash is never included.
	GetByID(ctx context.Context, id int64) (Person, error)

	// GetByEmail is the login lookup: same reconstruction as GetByID but
	// keyed by email and carrying the stored password hash.
	GetByEmail(ctx context.Context, email string) (Person, error)

	// List returns all people with roles resolved but phone lists empty.
	List(ctx context.Context) ([]Person, error)

	// Update writes base columns only.
	Update(ctx context.Context, p Person) error

	// Delete removes the person row; the schema cascades to phones,
	// specialization rows and ownership links.
	Delete(ctx context.Context, id int64) error
}
