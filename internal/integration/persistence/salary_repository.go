package persistence

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/infra/filedb"
)

type salaryRepository struct {
	collection *filedb.Collection[entity.Salary]
}

// NewSalaryRepository creates a salary repository backed by the "salaries"
// collection of the given store.
func NewSalaryRepository(store *filedb.Store) adapter.SalaryRepository {
	return &salaryRepository{
		collection: filedb.NewCollection[entity.Salary](store, "salaries"),
	}
}

func (r *salaryRepository) FindAll(ctx context.Context) ([]entity.Salary, error) {
	return r.collection.ReadAll(ctx)
}

func (r *salaryRepository) FindByID(ctx context.Context, id string) (*entity.Salary, error) {
	salaries, err := r.collection.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salaries {
		if salaries[i].ID == id {
			return &salaries[i], nil
		}
	}
	return nil, nil
}

func (r *salaryRepository) SaveAll(ctx context.Context, salaries []entity.Salary) error {
	return r.collection.ReplaceAll(ctx, salaries)
}

func (r *salaryRepository) Update(ctx context.Context, fn func([]entity.Salary) ([]entity.Salary, error)) error {
	return r.collection.Update(ctx, fn)
}
