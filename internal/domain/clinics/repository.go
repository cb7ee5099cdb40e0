package clinics

import "context"

type Repository interface {
	Save(ctx context.Context, c Clinic) (Clinic, error)
	GetByID(ctx context.Context, id int64) (Clinic, error)
	List(ctx context.Context) ([]Clinic, error)
	Update(ctx context.Context, c Clinic) error
	Delete(ctx context.Context, id int64) error
}
