package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/usecase/report"
)

// CategorySummaryResponse represents one category's totals in the monthly
// summary.
type CategorySummaryResponse struct {
	CategoryID string          `json:"categoryId"`
	Total      decimal.Decimal `json:"total"`
	Budget     decimal.Decimal `json:"budget"`
	Percent    decimal.Decimal `json:"percent"`
}

// SummaryResponse represents the monthly summary report.
type SummaryResponse struct {
	IncomeTotal  decimal.Decimal           `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal           `json:"expenseTotal"`
	Balance      decimal.Decimal           `json:"balance"`
	ByCategory   []CategorySummaryResponse `json:"byCategory"`
}

// ToSummaryResponse converts a summary use case output to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	byCategory := make([]CategorySummaryResponse, len(output.ByCategory))
	for i, item := range output.ByCategory {
		byCategory[i] = CategorySummaryResponse{
			CategoryID: item.CategoryID,
			Total:      item.Total,
			Budget:     item.Budget,
			Percent:    item.Percent,
		}
	}
	return SummaryResponse{
		IncomeTotal:  output.IncomeTotal,
		ExpenseTotal: output.ExpenseTotal,
		Balance:      output.Balance,
		ByCategory:   byCategory,
	}
}
