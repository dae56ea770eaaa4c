package salary

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// GetSalaryInput represents the input for fetching one period's salary.
type GetSalaryInput struct {
	UserID string
	Period valueobject.Period
}

// GetSalaryOutput represents the output of fetching one period's salary.
type GetSalaryOutput struct {
	Salary *entity.Salary
}

// GetSalaryUseCase handles single salary retrieval.
type GetSalaryUseCase struct {
	salaryRepo adapter.SalaryRepository
}

// NewGetSalaryUseCase creates a new GetSalaryUseCase instance.
func NewGetSalaryUseCase(salaryRepo adapter.SalaryRepository) *GetSalaryUseCase {
	return &GetSalaryUseCase{
		salaryRepo: salaryRepo,
	}
}

// Execute fetches the salary recorded for the user and period.
func (uc *GetSalaryUseCase) Execute(ctx context.Context, input GetSalaryInput) (*GetSalaryOutput, error) {
	salaries, err := uc.salaryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salaries {
		if salaries[i].UserID == input.UserID && salaries[i].Year == input.Period.Year && salaries[i].Month == input.Period.Month {
			return &GetSalaryOutput{Salary: &salaries[i]}, nil
		}
	}
	return nil, domainerror.NewSalaryNotFound()
}
