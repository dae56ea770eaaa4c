package persistence

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/infra/filedb"
)

type expenseRepository struct {
	collection *filedb.Collection[entity.Expense]
}

// NewExpenseRepository creates an expense repository backed by the "expenses"
// collection of the given store.
func NewExpenseRepository(store *filedb.Store) adapter.ExpenseRepository {
	return &expenseRepository{
		collection: filedb.NewCollection[entity.Expense](store, "expenses"),
	}
}

func (r *expenseRepository) FindAll(ctx context.Context) ([]entity.Expense, error) {
	return r.collection.ReadAll(ctx)
}

func (r *expenseRepository) FindByID(ctx context.Context, id string) (*entity.Expense, error) {
	expenses, err := r.collection.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, nil
}

func (r *expenseRepository) SaveAll(ctx context.Context, expenses []entity.Expense) error {
	return r.collection.ReplaceAll(ctx, expenses)
}

func (r *expenseRepository) Update(ctx context.Context, fn func([]entity.Expense) ([]entity.Expense, error)) error {
	return r.collection.Update(ctx, fn)
}
