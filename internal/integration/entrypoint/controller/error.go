// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
	"github.com/finbook/backend/internal/integration/entrypoint/middleware"
)

// respondError maps a use case error onto an HTTP response. Domain errors
// carry their kind and code; anything else is an opaque internal error.
func respondError(ctx *gin.Context, err error) {
	var domainErr *domainerror.DomainError
	if errors.As(err, &domainErr) {
		ctx.JSON(statusForKind(domainErr.Kind), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
		return
	}

	slog.Error("request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID pulls the authenticated user's id out of the context, writing
// the 401 response itself when it is missing.
func currentUserID(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  domainerror.ErrCodeMissingToken,
		})
	}
	return userID, ok
}

// respondBadRequest writes the 400 response for malformed request bodies and
// parameters.
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
