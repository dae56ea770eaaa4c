package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/usecase/category"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		CategoryID: ctx.Param("id"),
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	budget := decimal.Zero
	if req.Budget != nil {
		budget = *req.Budget
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Budget: budget,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID: ctx.Param("id"),
		UserID:     userID,
		Name:       req.Name,
		Budget:     req.Budget,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		CategoryID: ctx.Param("id"),
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
