// Package user contains user profile use cases.
package user

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetProfileInput represents the input for fetching the caller's profile.
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput represents the output of fetching the caller's profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase handles profile retrieval.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the user's own profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerror.NewUserNotFound()
	}
	return &GetProfileOutput{User: user}, nil
}
