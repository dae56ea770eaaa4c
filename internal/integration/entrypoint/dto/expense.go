package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date          valueobject.Date `json:"date" binding:"required"`
	Description   string           `json:"description" binding:"required,min=1,max=200"`
	CategoryID    string           `json:"categoryId,omitempty"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
	Amount        decimal.Decimal  `json:"amount" binding:"required"`
	IsRecurring   bool             `json:"isRecurring"`
	Notes         string           `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Date          *valueobject.Date `json:"date,omitempty"`
	Description   *string           `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	CategoryID    *string           `json:"categoryId,omitempty"`
	PaymentMethod *string           `json:"paymentMethod,omitempty"`
	Amount        *decimal.Decimal  `json:"amount,omitempty"`
	IsRecurring   *bool             `json:"isRecurring,omitempty"`
	Notes         *string           `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"categoryId,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	IsRecurring   bool            `json:"isRecurring"`
	Notes         string          `json:"notes,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID,
		Date:          expense.Date.String(),
		Description:   expense.Description,
		CategoryID:    expense.CategoryID,
		PaymentMethod: string(expense.PaymentMethod),
		Amount:        expense.Amount,
		IsRecurring:   expense.IsRecurring,
		Notes:         expense.Notes,
	}
}

// ToExpenseListResponse converts a list of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return ExpenseListResponse{Expenses: responses}
}
