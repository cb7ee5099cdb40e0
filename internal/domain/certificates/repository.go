package certificates

import "context"

type Repository interface {
	Save(ctx context.Context, c Certificate) (Certificate, error)
	GetByID(ctx context.Context, id int64) (Certificate, error)
	ListByPet(ctx context.Context, petID int64) ([]Certificate, error)
	Delete(ctx context.Context, id int64) error
}
