// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for expense creation. Date is the
// anchor date recurrence projection is computed from.
type CreateExpenseInput struct {
	UserID        string
	Date          valueobject.Date
	Description   string
	CategoryID    string
	PaymentMethod entity.PaymentMethod
	Amount        decimal.Decimal
	IsRecurring   bool
	Notes         string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewNonPositiveAmount()
	}
	if !input.PaymentMethod.Valid() {
		return nil, domainerror.NewInvalidPaymentMethod()
	}

	var created *entity.Expense
	err := uc.expenseRepo.Update(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		created = entity.NewExpense(
			input.UserID,
			input.Date,
			strings.TrimSpace(input.Description),
			strings.TrimSpace(input.CategoryID),
			input.PaymentMethod,
			input.Amount,
			input.IsRecurring,
			strings.TrimSpace(input.Notes),
		)
		return append(expenses, *created), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateExpenseOutput{Expense: created}, nil
}

// indexOwnedBy returns the index of the expense with the given id and owner,
// or -1.
func indexOwnedBy(expenses []entity.Expense, id, userID string) int {
	for i, expense := range expenses {
		if expense.ID == id && expense.UserID == userID {
			return i
		}
	}
	return -1
}
