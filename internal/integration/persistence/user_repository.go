// Package persistence implements the repository adapters on top of the
// file-backed record store. Each repository is bound to a fixed collection
// name and holds no state of its own: every operation re-reads the full
// collection from disk.
package persistence

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/infra/filedb"
)

type userRepository struct {
	collection *filedb.Collection[entity.User]
}

// NewUserRepository creates a user repository backed by the "users"
// collection of the given store.
func NewUserRepository(store *filedb.Store) adapter.UserRepository {
	return &userRepository{
		collection: filedb.NewCollection[entity.User](store, "users"),
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return r.collection.ReadAll(ctx)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.collection.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) SaveAll(ctx context.Context, users []entity.User) error {
	return r.collection.ReplaceAll(ctx, users)
}

func (r *userRepository) Update(ctx context.Context, fn func([]entity.User) ([]entity.User, error)) error {
	return r.collection.Update(ctx, fn)
}
