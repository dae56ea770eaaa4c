package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/income"
	"github.com/finbook/backend/internal/domain/valueobject"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests. from and to are inclusive ISO date
// bounds; categoryId narrows to one category.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := income.ListIncomesInput{
		UserID:     userID,
		CategoryID: ctx.Query("categoryId"),
	}

	var err error
	if input.From, err = parseDateQuery(ctx, "from"); err != nil {
		respondBadRequest(ctx, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateQuery(ctx, "to"); err != nil {
		respondBadRequest(ctx, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:      userID,
		Date:        req.Date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		IncomeID:    ctx.Param("id"),
		UserID:      userID,
		Date:        req.Date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		IncomeID: ctx.Param("id"),
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseDateQuery reads an optional ISO date query parameter.
func parseDateQuery(ctx *gin.Context, name string) (*valueobject.Date, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	date, err := valueobject.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
