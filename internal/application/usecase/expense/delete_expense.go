package expense

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID string
	UserID    string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	return uc.expenseRepo.Update(ctx, func(expenses []entity.Expense) ([]entity.Expense, error) {
		index := indexOwnedBy(expenses, input.ExpenseID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewExpenseNotFound()
		}
		return append(expenses[:index], expenses[index+1:]...), nil
	})
}
