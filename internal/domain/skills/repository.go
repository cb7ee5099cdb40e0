package skills

import "context"

type Repository interface {
	Save(ctx context.Context, s Skill) (Skill, error)
	GetByID(ctx context.Context, id int64) (Skill, error)
	List(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, s Skill) error
	Delete(ctx context.Context, id int64) error
}
