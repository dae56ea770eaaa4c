package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	UserID string
	Period valueobject.Period
}

// CategorySummary is one category's spend against its budget for the period.
type CategorySummary struct {
	CategoryID string
	Total      decimal.Decimal
	Budget     decimal.Decimal
	Percent    decimal.Decimal
}

// GetSummaryOutput represents the output of the monthly summary.
type GetSummaryOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
	ByCategory   []CategorySummary
}

// GetSummaryUseCase computes the income/expense/balance totals and the
// per-category breakdown for one calendar month.
type GetSummaryUseCase struct {
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	salaryRepo   adapter.SalaryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	salaryRepo adapter.SalaryRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		salaryRepo:   salaryRepo,
	}
}

// Execute builds the summary for the given user and period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	incomes, err := incomesForPeriod(ctx, uc.incomeRepo, input.UserID, input.Period)
	if err != nil {
		return nil, err
	}
	expenses, err := expensesForPeriod(ctx, uc.expenseRepo, input.UserID, input.Period)
	if err != nil {
		return nil, err
	}
	categories, err := categoriesOf(ctx, uc.categoryRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	salary, err := salaryForPeriod(ctx, uc.salaryRepo, input.UserID, input.Period)
	if err != nil {
		return nil, err
	}

	incomeTotal := decimal.Zero
	if salary != nil {
		incomeTotal = salary.Amount
	}
	for _, income := range incomes {
		incomeTotal = incomeTotal.Add(income.Amount)
	}

	expenseTotal, totalsByCategory := sumAmounts(expenses)

	byCategory := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		total := totalsByCategory[category.ID].Round(2)
		percent := decimal.Zero
		if category.Budget.IsPositive() {
			percent = total.Div(category.Budget).Mul(decimal.NewFromInt(100)).Round(2)
		}
		byCategory = append(byCategory, CategorySummary{
			CategoryID: category.ID,
			Total:      total,
			Budget:     category.Budget,
			Percent:    percent,
		})
	}

	return &GetSummaryOutput{
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Balance:      incomeTotal.Sub(expenseTotal),
		ByCategory:   byCategory,
	}, nil
}
