package entity

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/valueobject"
)

// Income represents a one-time income event tied to exactly one calendar date.
type Income struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Date        valueobject.Date `json:"date"`
	Description string           `json:"description"`
	CategoryID  string           `json:"categoryId"`
	Amount      decimal.Decimal  `json:"amount"`
}

// NewIncome creates a new Income entity with a generated id.
func NewIncome(userID string, date valueobject.Date, description, categoryID string, amount decimal.Decimal) *Income {
	return &Income{
		ID:          valueobject.NewID("inc"),
		UserID:      userID,
		Date:        date,
		Description: description,
		CategoryID:  categoryID,
		Amount:      amount,
	}
}
