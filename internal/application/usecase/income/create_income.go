// Package income contains income-related use cases.
package income

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID      string
	Date        valueobject.Date
	Description string
	CategoryID  string
	Amount      decimal.Decimal
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewNonPositiveAmount()
	}

	var created *entity.Income
	err := uc.incomeRepo.Update(ctx, func(incomes []entity.Income) ([]entity.Income, error) {
		created = entity.NewIncome(
			input.UserID,
			input.Date,
			strings.TrimSpace(input.Description),
			strings.TrimSpace(input.CategoryID),
			input.Amount,
		)
		return append(incomes, *created), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateIncomeOutput{Income: created}, nil
}

// indexOwnedBy returns the index of the income with the given id and owner,
// or -1.
func indexOwnedBy(incomes []entity.Income, id, userID string) int {
	for i, income := range incomes {
		if income.ID == id && income.UserID == userID {
			return i
		}
	}
	return -1
}
