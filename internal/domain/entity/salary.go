package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/valueobject"
)

// Salary represents the salary for one user and one calendar month. At most
// one entry exists per (user, year, month); the id is derived
// deterministically from that key, which is what makes upserts idempotent.
type Salary struct {
	ID     string          `json:"id"`
	UserID string          `json:"userId"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SalaryID derives the deterministic id for a salary entry.
func SalaryID(userID string, period valueobject.Period) string {
	return fmt.Sprintf("sal_%s_%04d-%02d", userID, period.Year, period.Month)
}

// NewSalary creates a Salary entry for the given user and period.
func NewSalary(userID string, period valueobject.Period, amount decimal.Decimal) *Salary {
	return &Salary{
		ID:     SalaryID(userID, period),
		UserID: userID,
		Year:   period.Year,
		Month:  period.Month,
		Amount: amount,
	}
}

// Period returns the calendar month the salary belongs to.
func (s Salary) Period() valueobject.Period {
	return valueobject.NewPeriod(s.Year, s.Month)
}
