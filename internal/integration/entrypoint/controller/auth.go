package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/auth"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// AuthController handles registration and login endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	})
}
