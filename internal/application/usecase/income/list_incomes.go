package income

import (
	"context"
	"slices"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// ListIncomesInput represents the input for income listing. From and To are
// inclusive date bounds; nil filters are ignored.
type ListIncomesInput struct {
	UserID     string
	From       *valueobject.Date
	To         *valueobject.Date
	CategoryID string
}

// ListIncomesOutput represents the output of income listing.
type ListIncomesOutput struct {
	Incomes []entity.Income
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns the user's incomes matching the filters, most recent first.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Income, 0, len(incomes))
	for _, income := range incomes {
		if income.UserID != input.UserID {
			continue
		}
		if input.From != nil && income.Date.Before(*input.From) {
			continue
		}
		if input.To != nil && income.Date.After(*input.To) {
			continue
		}
		if input.CategoryID != "" && income.CategoryID != input.CategoryID {
			continue
		}
		matched = append(matched, income)
	}

	slices.SortStableFunc(matched, func(a, b entity.Income) int {
		return b.Date.Compare(a.Date)
	})

	return &ListIncomesOutput{Incomes: matched}, nil
}
