package auth

import (
	"context"
	"fmt"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	User  *entity.User
	Token string
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute validates the credentials and issues a bearer token. Every failure
// is the same generic authentication error: it never reveals whether the
// username existed.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := entity.NormalizeUsername(input.Username)

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var found *entity.User
	for i := range users {
		if users[i].Username == username {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return nil, domainerror.NewInvalidCredentials()
	}

	if err := uc.passwordService.VerifyPassword(found.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewInvalidCredentials()
	}

	token, err := uc.tokenService.GenerateToken(found)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{User: found, Token: token}, nil
}
