package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// minPasswordLength mirrors the registration rule.
const minPasswordLength = 8

// UpdateProfileInput represents the input for profile update. Nil fields are
// left unchanged; the username is immutable.
type UpdateProfileInput struct {
	UserID   string
	Name     *string
	Password *string
}

// UpdateProfileOutput represents the output of profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute updates the user's name and/or password.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.New(
				domainerror.KindValidation,
				domainerror.ErrCodeMissingUserFields,
				"name must not be empty",
				nil,
			)
		}
	}

	var passwordHash string
	if input.Password != nil {
		if len(*input.Password) < minPasswordLength {
			return nil, domainerror.New(
				domainerror.KindValidation,
				domainerror.ErrCodeWeakPassword,
				fmt.Sprintf("password must be at least %d characters long", minPasswordLength),
				nil,
			)
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = hash
	}

	var updated *entity.User
	err := uc.userRepo.Update(ctx, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID != input.UserID {
				continue
			}
			next := users[i]
			if input.Name != nil {
				next.Name = name
			}
			if input.Password != nil {
				next.PasswordHash = passwordHash
			}
			users[i] = next
			updated = &next
			return users, nil
		}
		return nil, domainerror.NewUserNotFound()
	})
	if err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{User: updated}, nil
}
