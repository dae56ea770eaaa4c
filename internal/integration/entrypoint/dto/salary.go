package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/entity"
)

// UpsertSalaryRequest represents the request body for the salary upsert.
type UpsertSalaryRequest struct {
	Year   int             `json:"year" binding:"required,min=1900,max=2100"`
	Month  int             `json:"month" binding:"required,min=1,max=12"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SalaryResponse represents a single salary entry in API responses.
type SalaryResponse struct {
	ID     string          `json:"id"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SalaryListResponse represents the response for listing salaries.
type SalaryListResponse struct {
	Salaries []SalaryResponse `json:"salaries"`
}

// ToSalaryResponse converts a domain Salary entity to a SalaryResponse DTO.
func ToSalaryResponse(salary *entity.Salary) SalaryResponse {
	return SalaryResponse{
		ID:     salary.ID,
		Year:   salary.Year,
		Month:  salary.Month,
		Amount: salary.Amount,
	}
}

// ToSalaryListResponse converts a list of salaries to a SalaryListResponse.
func ToSalaryListResponse(salaries []entity.Salary) SalaryListResponse {
	responses := make([]SalaryResponse, len(salaries))
	for i := range salaries {
		responses[i] = ToSalaryResponse(&salaries[i])
	}
	return SalaryListResponse{Salaries: responses}
}
