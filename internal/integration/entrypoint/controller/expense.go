package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/usecase/expense"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests. from and to bound the anchor date;
// recurring=true|false filters on the recurrence flag.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	input := expense.ListExpensesInput{
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
	if raw := ctx.Query("recurring"); raw != "" {
		recurring, err := strconv.ParseBool(raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid recurring filter, expected true or false")
			return
		}
		input.Recurring = &recurring
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:        userID,
		Date:          req.Date,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Amount:        req.Amount,
		IsRecurring:   req.IsRecurring,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:   ctx.Param("id"),
		UserID:      userID,
		Date:        req.Date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		IsRecurring: req.IsRecurring,
		Notes:       req.Notes,
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: ctx.Param("id"),
		UserID:    userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
