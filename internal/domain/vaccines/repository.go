package vaccines

import "context"

type Repository interface {
	Save(ctx context.Context, v Vaccine) (Vaccine, error)
	GetByID(ctx context.Context, id int64) (Vaccine, error)
	List(ctx context.Context) ([]Vaccine, error)
	Update(ctx context.Context, v Vaccine) error
	Delete(ctx context.Context, id int64) error
}
