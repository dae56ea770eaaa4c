package persistence

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/infra/filedb"
)

type categoryRepository struct {
	collection *filedb.Collection[entity.Category]
}

// NewCategoryRepository creates a category repository backed by the
// "categories" collection of the given store.
func NewCategoryRepository(store *filedb.Store) adapter.CategoryRepository {
	return &categoryRepository{
		collection: filedb.NewCollection[entity.Category](store, "categories"),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	return r.collection.ReadAll(ctx)
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	categories, err := r.collection.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) SaveAll(ctx context.Context, categories []entity.Category) error {
	return r.collection.ReplaceAll(ctx, categories)
}

func (r *categoryRepository) Update(ctx context.Context, fn func([]entity.Category) ([]entity.Category, error)) error {
	return r.collection.Update(ctx, fn)
}
