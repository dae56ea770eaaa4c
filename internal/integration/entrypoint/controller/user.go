package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/user"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// UserController handles the self-service profile endpoints.
type UserController struct {
	getProfileUseCase    *user.GetProfileUseCase
	updateProfileUseCase *user.UpdateProfileUseCase
	deleteAccountUseCase *user.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	deleteAccountUseCase *user.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /users/me requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), user.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Delete handles DELETE /users/me requests.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), user.DeleteAccountInput{UserID: userID}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
