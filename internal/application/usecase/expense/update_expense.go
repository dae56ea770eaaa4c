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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	ExpenseID     string
	UserID        string
	Date          *valueobject.Date
	Description   *string
	CategoryID    *string
	PaymentMethod *entity.PaymentMethod
	Amount        *decimal.Decimal
	IsRecurring   *bool
	Notes         *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute merges the provided fields over the stored expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, domainerror.NewNonPositiveAmount()
	}
	if input.PaymentMethod != nil && !input.PaymentMethod.Valid() {
		return nil, domainerror.NewInvalidPaymentMethod()
	}

	var updated *entity.Expense
	err := uc.expenseRepo.Update(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		index := indexOwnedBy(expenses, input.ExpenseID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewExpenseNotFound()
		}
		next := expenses[index]
		if input.Date != nil {
			next.Date = *input.Date
		}
		if input.Description != nil {
			next.Description = strings.TrimSpace(*input.Description)
		}
		if input.CategoryID != nil {
			next.CategoryID = strings.TrimSpace(*input.CategoryID)
		}
		if input.PaymentMethod != nil {
			next.PaymentMethod = *input.PaymentMethod
		}
		if input.Amount != nil {
			next.Amount = *input.Amount
		}
		if input.IsRecurring != nil {
			next.IsRecurring = *input.IsRecurring
		}
		if input.Notes != nil {
			next.Notes = strings.TrimSpace(*input.Notes)
		}
		expenses[index] = next
		updated = &next
		return expenses, nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateExpenseOutput{Expense: updated}, nil
}
