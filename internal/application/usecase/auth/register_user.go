// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// MinPasswordLength is the minimum required password length.
const MinPasswordLength = 8

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Username string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User  *entity.User
	Token string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute registers a new user and signs them in. The uniqueness check runs
// inside the collection's critical section.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	username := entity.NormalizeUsername(input.Username)
	if name == "" || username == "" {
		return nil, domainerror.New(
			domainerror.KindValidation,
			domainerror.ErrCodeMissingUserFields,
			"name and username are required",
			nil,
		)
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domainerror.New(
			domainerror.KindValidation,
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password must be at least %d characters long", MinPasswordLength),
			nil,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var created *entity.User
	err = uc.userRepo.Update(ctx, func(users []entity.User) ([]entity.User, error) {
		for _, user := range users {
			if user.Username == username {
				return nil, domainerror.NewUsernameTaken()
			}
		}
		created = entity.NewUser(name, username, passwordHash)
		return append(users, *created), nil
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokenService.GenerateToken(created)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{User: created, Token: token}, nil
}
