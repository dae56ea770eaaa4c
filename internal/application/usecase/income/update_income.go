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

// UpdateIncomeInput represents the input for income update. Nil fields are
// left unchanged.
type UpdateIncomeInput struct {
	IncomeID    string
	UserID      string
	Date        *valueobject.Date
	Description *string
	CategoryID  *string
	Amount      *decimal.Decimal
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute merges the provided fields over the stored income.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, domainerror.NewNonPositiveAmount()
	}

	var updated *entity.Income
	err := uc.incomeRepo.Update(ctx, func(incomes []entity.Income) ([]entity.Income, error) {
		index := indexOwnedBy(incomes, input.IncomeID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewIncomeNotFound()
		}
		next := incomes[index]
		if input.Date != nil {
			next.Date = *input.Date
		}
		if input.Description != nil {
			next.Description = strings.TrimSpace(*input.Description)
		}
		if input.CategoryID != nil {
			next.CategoryID = strings.TrimSpace(*input.CategoryID)
		}
		if input.Amount != nil {
			next.Amount = *input.Amount
		}
		incomes[index] = next
		updated = &next
		return incomes, nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateIncomeOutput{Income: updated}, nil
}
