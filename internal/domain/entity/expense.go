package entity

import (
	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/valueobject"
)

// PaymentMethod identifies how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebit      PaymentMethod = "debit"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCash       PaymentMethod = "cash"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebit, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

// Expense represents a spend event. The stored date is the anchor date: a
// non-recurring expense occurs exactly once on it, while a recurring expense
// repeats on the same day of month every month from the anchor onward.
type Expense struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	Date          valueobject.Date `json:"date"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"categoryId"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	Amount        decimal.Decimal  `json:"amount"`
	IsRecurring   bool             `json:"isRecurring"`
	Notes         string           `json:"notes,omitempty"`
}

// NewExpense creates a new Expense entity with a generated id.
func NewExpense(userID string, date valueobject.Date, description, categoryID string, paymentMethod PaymentMethod, amount decimal.Decimal, isRecurring bool, notes string) *Expense {
	return &Expense{
		ID:            valueobject.NewID("exp"),
		UserID:        userID,
		Date:          date,
		Description:   description,
		CategoryID:    categoryID,
		PaymentMethod: paymentMethod,
		Amount:        amount,
		IsRecurring:   isRecurring,
		Notes:         notes,
	}
}

// OccursIn reports whether the expense is in scope for the given period.
// Non-recurring expenses match only their anchor month; recurring expenses
// match every period from the anchor month onward, never backward.
func (e Expense) OccursIn(period valueobject.Period) bool {
	anchor := valueobject.PeriodOf(e.Date)
	if !e.IsRecurring {
		return anchor.Compare(period) == 0
	}
	return anchor.Compare(period) <= 0
}

// EffectiveDateIn returns the date the expense is attributed to within the
// given period. For the anchor month (and all non-recurring expenses) this is
// the anchor date itself; for projected recurrences the anchor's day of month
// is capped to the period's last valid day, so a Jan-31 recurrence lands on
// Feb-28 (or Feb-29 in leap years).
func (e Expense) EffectiveDateIn(period valueobject.Period) valueobject.Date {
	if !e.IsRecurring || period.Contains(e.Date) {
		return e.Date
	}
	return period.DayCapped(e.Date.Day())
}
