package salary

import (
	"context"
	"slices"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
)

// ListSalariesInput represents the input for salary listing. Zero-valued
// filters are ignored.
type ListSalariesInput struct {
	UserID string
	Year   int
	Month  int
}

// ListSalariesOutput represents the output of salary listing.
type ListSalariesOutput struct {
	Salaries []entity.Salary
}

// ListSalariesUseCase handles salary listing logic.
type ListSalariesUseCase struct {
	salaryRepo adapter.SalaryRepository
}

// NewListSalariesUseCase creates a new ListSalariesUseCase instance.
func NewListSalariesUseCase(salaryRepo adapter.SalaryRepository) *ListSalariesUseCase {
	return &ListSalariesUseCase{
		salaryRepo: salaryRepo,
	}
}

// Execute returns the user's salaries sorted by (year, month) ascending.
func (uc *ListSalariesUseCase) Execute(ctx context.Context, input ListSalariesInput) (*ListSalariesOutput, error) {
	salaries, err := uc.salaryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Salary, 0, len(salaries))
	for _, salary := range salaries {
		if salary.UserID != input.UserID {
			continue
		}
		if input.Year != 0 && salary.Year != input.Year {
			continue
		}
		if input.Month != 0 && salary.Month != input.Month {
			continue
		}
		matched = append(matched, salary)
	}

	slices.SortStableFunc(matched, func(a, b entity.Salary) int {
		return a.Period().Compare(b.Period())
	})

	return &ListSalariesOutput{Salaries: matched}, nil
}
