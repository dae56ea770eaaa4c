// Package report contains the month-scoped reporting use cases. The report
// engine only reads: it folds the ledger collections into summaries and CSV
// exports and never writes anything back.
package report

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
)

const (
	minReportYear = 1900
	maxReportYear = 2100
)

func validatePeriod(period valueobject.Period) error {
	if period.Year < minReportYear || period.Year > maxReportYear ||
		period.Month < 1 || period.Month > 12 {
		return domainerror.NewInvalidPeriod()
	}
	return nil
}

// periodExpense is an expense paired with the date it is attributed to inside
// the report period. For projected recurrences the effective date differs
// from the stored anchor date.
type periodExpense struct {
	entity.Expense
	EffectiveDate valueobject.Date
}

// expensesForPeriod returns the user's in-scope expenses for the period,
// sorted by effective date ascending.
func expensesForPeriod(ctx context.Context, repo adapter.ExpenseRepository, userID string, period valueobject.Period) ([]periodExpense, error) {
	expenses, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var scoped []periodExpense
	for _, expense := range expenses {
		if expense.UserID != userID || !expense.OccursIn(period) {
			continue
		}
		scoped = append(scoped, periodExpense{
			Expense:       expense,
			EffectiveDate: expense.EffectiveDateIn(period),
		})
	}
	slices.SortStableFunc(scoped, func(a, b periodExpense) int {
		return a.EffectiveDate.Compare(b.EffectiveDate)
	})
	return scoped, nil
}

// incomesForPeriod returns the user's incomes dated inside the period, sorted
// by date ascending.
func incomesForPeriod(ctx context.Context, repo adapter.IncomeRepository, userID string, period valueobject.Period) ([]entity.Income, error) {
	incomes, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var scoped []entity.Income
	for _, income := range incomes {
		if income.UserID != userID || !period.Contains(income.Date) {
			continue
		}
		scoped = append(scoped, income)
	}
	slices.SortStableFunc(scoped, func(a, b entity.Income) int {
		return a.Date.Compare(b.Date)
	})
	return scoped, nil
}

// salaryForPeriod returns the user's salary entry for the period, or nil when
// none is recorded.
func salaryForPeriod(ctx context.Context, repo adapter.SalaryRepository, userID string, period valueobject.Period) (*entity.Salary, error) {
	salaries, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, salary := range salaries {
		if salary.UserID == userID && salary.Period() == period {
			return &salary, nil
		}
	}
	return nil, nil
}

// categoriesOf returns every category owned by the user in stored order.
func categoriesOf(ctx context.Context, repo adapter.CategoryRepository, userID string) ([]entity.Category, error) {
	categories, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var owned []entity.Category
	for _, category := range categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

// sumAmounts folds expense amounts into a grand total and per-category
// buckets keyed by category id.
func sumAmounts(expenses []periodExpense) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		byCategory[expense.CategoryID] = byCategory[expense.CategoryID].Add(expense.Amount)
	}
	return total, byCategory
}
