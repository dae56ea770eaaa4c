package user

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID string
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(userRepo adapter.UserRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{userRepo: userRepo}
}

// Execute removes the user record. Records owned by the user in other
// collections are left in place.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	return uc.userRepo.Update(ctx, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID == input.UserID {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, domainerror.NewUserNotFound()
	})
}
