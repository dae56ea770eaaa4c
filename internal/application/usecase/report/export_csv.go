package report

import (
	"context"
	"encoding/csv"
	"strings"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/valueobject"
)

// salaryRowLabel is the fixed description used for the salary line in
// exports.
const salaryRowLabel = "Monthly Salary"

var csvHeader = []string{"type", "date", "description", "category", "paymentMethod", "amount"}

// ExportCSVInput represents the input for the CSV export.
type ExportCSVInput struct {
	UserID string
	Period valueobject.Period
}

// ExportCSVOutput represents the output of the CSV export.
type ExportCSVOutput struct {
	// CSV holds the newline-joined document without a trailing newline.
	CSV string
}

// ExportCSVUseCase flattens one month's ledger into a CSV document: the
// salary row first when present, then incomes by date ascending, then
// expenses by effective date ascending.
type ExportCSVUseCase struct {
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	salaryRepo   adapter.SalaryRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	salaryRepo adapter.SalaryRepository,
) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		salaryRepo:   salaryRepo,
	}
}

// Execute renders the CSV export for the given user and period.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
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

	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}
	// An expense may reference a category that was deleted afterwards; the
	// export falls back to the raw id instead of failing.
	resolveCategory := func(id string) string {
		if name, ok := categoryNames[id]; ok {
			return name
		}
		return id
	}

	records := [][]string{csvHeader}

	if salary != nil {
		records = append(records, []string{
			"salary",
			input.Period.FirstDay().String(),
			salaryRowLabel,
			"",
			"",
			salary.Amount.StringFixed(2),
		})
	}

	for _, income := range incomes {
		records = append(records, []string{
			"income",
			income.Date.String(),
			income.Description,
			resolveCategory(income.CategoryID),
			"",
			income.Amount.StringFixed(2),
		})
	}

	for _, expense := range expenses {
		records = append(records, []string{
			"expense",
			expense.EffectiveDate.String(),
			expense.Description,
			resolveCategory(expense.CategoryID),
			string(expense.PaymentMethod),
			expense.Amount.StringFixed(2),
		})
	}

	var buf strings.Builder
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}

	return &ExportCSVOutput{CSV: strings.TrimSuffix(buf.String(), "\n")}, nil
}
