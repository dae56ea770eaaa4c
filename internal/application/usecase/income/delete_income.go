package income

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID string
	UserID   string
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	return uc.incomeRepo.Update(ctx, func(incomes []entity.Income) ([]entity.Income, error) {
		index := indexOwnedBy(incomes, input.IncomeID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewIncomeNotFound()
		}
		return append(incomes[:index], incomes[index+1:]...), nil
	})
}
