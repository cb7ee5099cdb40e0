package trainers

import "context"

type Repository interface {
	Save(ctx context.Context, t Trainer) (Trainer, error)
	GetByID(ctx context.Context, id int64) (Trainer, error)
	List(ctx context.Context) ([]Trainer, error)
	Update(ctx context.Context, t Trainer) error
	Delete(ctx context.Context, id int64) error
}
