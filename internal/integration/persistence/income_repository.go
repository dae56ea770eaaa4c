package persistence

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/infra/filedb"
)

type incomeRepository struct {
	collection *filedb.Collection[entity.Income]
}

// NewIncomeRepository creates an income repository backed by the "incomes"
// collection of the given store.
func NewIncomeRepository(store *filedb.Store) adapter.IncomeRepository {
	return &incomeRepository{
		collection: filedb.NewCollection[entity.Income](store, "incomes"),
	}
}

func (r *incomeRepository) FindAll(ctx context.Context) ([]entity.Income, error) {
	return r.collection.ReadAll(ctx)
}

func (r *incomeRepository) FindByID(ctx context.Context, id string) (*entity.Income, error) {
	incomes, err := r.collection.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range incomes {
		if incomes[i].ID == id {
			return &incomes[i], nil
		}
	}
	return nil, nil
}

func (r *incomeRepository) SaveAll(ctx context.Context, incomes []entity.Income) error {
	return r.collection.ReplaceAll(ctx, incomes)
}

func (r *incomeRepository) Update(ctx context.Context, fn func([]entity.Income) ([]entity.Income, error)) error {
	return r.collection.Update(ctx, fn)
}
