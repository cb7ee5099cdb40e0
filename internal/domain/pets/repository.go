package pets

import "context"

// Repository persists pets, their ownership link and their optional
// service-animal row as one atomic unit.
//
// Known gap carried over from the current design: Update writes base columns
// only; the service record and the ownership link are not propagated.
type Repository interface {
	// Save inserts the pet, the ownership row for p.OwnerID and, when
	// p.Service is set, the service-animal row, all in one transaction.
	// A non-positive owner id aborts the transaction with no pet row
	// observable afterwards.
	Save(ctx context.Context, p Pet) (Pet, error)

	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)

	// Update writes base columns only.
	Update(ctx context.Context, p Pet) error

	// Delete removes the pet row; the schema cascades to ownership rows, the
	// service-animal row and transitively to credentials and certificates.
	Delete(ctx context.Context, id int64) error
}
