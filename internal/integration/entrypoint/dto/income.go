package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Date        valueobject.Date `json:"date" binding:"required"`
	Description string           `json:"description" binding:"required,min=1,max=200"`
	CategoryID  string           `json:"categoryId,omitempty"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Date        *valueobject.Date `json:"date,omitempty"`
	Description *string           `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	CategoryID  *string           `json:"categoryId,omitempty"`
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID,
		Date:        income.Date.String(),
		Description: income.Description,
		CategoryID:  income.CategoryID,
		Amount:      income.Amount,
	}
}

// ToIncomeListResponse converts a list of incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		responses[i] = ToIncomeResponse(&incomes[i])
	}
	return IncomeListResponse{Incomes: responses}
}
