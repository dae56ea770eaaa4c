// Package salary contains salary-related use cases.
package salary

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// UpsertSalaryInput represents the input for salary upsert.
type UpsertSalaryInput struct {
	UserID string
	Period valueobject.Period
	Amount decimal.Decimal
}

// UpsertSalaryOutput represents the output of salary upsert.
type UpsertSalaryOutput struct {
	Salary *entity.Salary
}

// UpsertSalaryUseCase handles salary upsert logic. The id is deterministic
// from (user, year, month), so repeating the operation replaces the existing
// entry in place instead of duplicating it.
type UpsertSalaryUseCase struct {
	salaryRepo adapter.SalaryRepository
}

// NewUpsertSalaryUseCase creates a new UpsertSalaryUseCase instance.
func NewUpsertSalaryUseCase(salaryRepo adapter.SalaryRepository) *UpsertSalaryUseCase {
	return &UpsertSalaryUseCase{
		salaryRepo: salaryRepo,
	}
}

// Execute performs the salary upsert.
func (uc *UpsertSalaryUseCase) Execute(ctx context.Context, input UpsertSalaryInput) (*UpsertSalaryOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewNonPositiveAmount()
	}

	next := entity.NewSalary(input.UserID, input.Period, input.Amount)
	err := uc.salaryRepo.Update(ctx, func(salaries []entity.Salary) ([]entity.Salary, error) {
		for i, salary := range salaries {
			if salary.UserID == input.UserID && salary.Year == input.Period.Year && salary.Month == input.Period.Month {
				salaries[i] = *next
				return salaries, nil
			}
		}
		return append(salaries, *next), nil
	})
	if err != nil {
		return nil, err
	}

	return &UpsertSalaryOutput{Salary: next}, nil
}
