package expense

import (
	"context"
	"slices"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for expense listing. From and To
// are inclusive date bounds on the anchor date; nil filters are ignored.
type ListExpensesInput struct {
	UserID     string
	From       *valueobject.Date
	To         *valueobject.Date
	CategoryID string
	Recurring  *bool
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Expenses []entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the user's expenses matching the filters, most recent
// anchor date first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.UserID != input.UserID {
			continue
		}
		if input.From != nil && expense.Date.Before(*input.From) {
			continue
		}
		if input.To != nil && expense.Date.After(*input.To) {
			continue
		}
		if input.CategoryID != "" && expense.CategoryID != input.CategoryID {
			continue
		}
		if input.Recurring != nil && expense.IsRecurring != *input.Recurring {
			continue
		}
		matched = append(matched, expense)
	}

	slices.SortStableFunc(matched, func(a, b entity.Expense) int {
		return b.Date.Compare(a.Date)
	})

	return &ListExpensesOutput{Expenses: matched}, nil
}
