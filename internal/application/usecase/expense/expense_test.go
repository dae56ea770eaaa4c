package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
	"github.com/finbook/backend/internal/infra/filedb"
	"github.com/finbook/backend/internal/integration/persistence"
)

func newTestRepo(t *testing.T) adapter.ExpenseRepository {
	t.Helper()
	return persistence.NewExpenseRepository(filedb.NewStore(t.TempDir()))
}

func date(year int, month time.Month, day int) valueobject.Date {
	return valueobject.NewDate(year, month, day)
}

func seedExpense(t *testing.T, repo adapter.ExpenseRepository, userID string, d valueobject.Date, categoryID string, amount int64, recurring bool) *entity.Expense {
	t.Helper()
	output, err := NewCreateExpenseUseCase(repo).Execute(context.Background(), CreateExpenseInput{
		UserID:        userID,
		Date:          d,
		Description:   "expense",
		CategoryID:    categoryID,
		PaymentMethod: entity.PaymentMethodPix,
		Amount:        decimal.NewFromInt(amount),
		IsRecurring:   recurring,
	})
	require.NoError(t, err)
	return output.Expense
}

func TestCreateExpense(t *testing.T) {
	repo := newTestRepo(t)

	output, err := NewCreateExpenseUseCase(repo).Execute(context.Background(), CreateExpenseInput{
		UserID:        "usr_1",
		Date:          date(2025, time.September, 5),
		Description:   "Electricity bill",
		CategoryID:    "cat_home",
		PaymentMethod: entity.PaymentMethodDebit,
		Amount:        decimal.NewFromInt(200),
		IsRecurring:   true,
		Notes:         "autopay",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^exp_[0-9a-f]{32}$`, output.Expense.ID)
	assert.True(t, output.Expense.IsRecurring)
	assert.Equal(t, entity.PaymentMethodDebit, output.Expense.PaymentMethod)
	assert.Equal(t, "autopay", output.Expense.Notes)
}

func TestCreateExpenseRejectsUnknownPaymentMethod(t *testing.T) {
	repo := newTestRepo(t)

	_, err := NewCreateExpenseUseCase(repo).Execute(context.Background(), CreateExpenseInput{
		UserID:        "usr_1",
		Date:          date(2025, time.September, 5),
		PaymentMethod: entity.PaymentMethod("cheque"),
		Amount:        decimal.NewFromInt(10),
	})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindValidation, domainErr.Kind)
}

func TestListExpensesRecurringFilter(t *testing.T) {
	repo := newTestRepo(t)
	seedExpense(t, repo, "usr_1", date(2025, time.September, 5), "cat_home", 200, true)
	seedExpense(t, repo, "usr_1", date(2025, time.September, 12), "cat_leisure", 120, false)

	recurring := true
	output, err := NewListExpensesUseCase(repo).Execute(context.Background(), ListExpensesInput{
		UserID:    "usr_1",
		Recurring: &recurring,
	})
	require.NoError(t, err)
	require.Len(t, output.Expenses, 1)
	assert.True(t, output.Expenses[0].IsRecurring)

	recurring = false
	output, err = NewListExpensesUseCase(repo).Execute(context.Background(), ListExpensesInput{
		UserID:    "usr_1",
		Recurring: &recurring,
	})
	require.NoError(t, err)
	require.Len(t, output.Expenses, 1)
	assert.False(t, output.Expenses[0].IsRecurring)
}

func TestListExpensesSortsByAnchorDateDescending(t *testing.T) {
	repo := newTestRepo(t)
	seedExpense(t, repo, "usr_1", date(2025, time.September, 5), "cat_a", 100, false)
	seedExpense(t, repo, "usr_1", date(2025, time.October, 1), "cat_a", 200, false)
	seedExpense(t, repo, "usr_2", date(2025, time.December, 1), "cat_a", 300, false)

	output, err := NewListExpensesUseCase(repo).Execute(context.Background(), ListExpensesInput{UserID: "usr_1"})
	require.NoError(t, err)

	require.Len(t, output.Expenses, 2)
	assert.Equal(t, "2025-10-01", output.Expenses[0].Date.String())
	assert.Equal(t, "2025-09-05", output.Expenses[1].Date.String())
}

func TestUpdateExpenseMergesFields(t *testing.T) {
	repo := newTestRepo(t)
	created := seedExpense(t, repo, "usr_1", date(2025, time.September, 5), "cat_a", 100, false)

	method := entity.PaymentMethodCreditCard
	recurring := true
	output, err := NewUpdateExpenseUseCase(repo).Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:     created.ID,
		UserID:        "usr_1",
		PaymentMethod: &method,
		IsRecurring:   &recurring,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCreditCard, output.Expense.PaymentMethod)
	assert.True(t, output.Expense.IsRecurring)
	assert.Equal(t, created.Date.String(), output.Expense.Date.String())
}

func TestExpenseOwnershipIsolation(t *testing.T) {
	repo := newTestRepo(t)
	created := seedExpense(t, repo, "usr_1", date(2025, time.September, 5), "cat_a", 100, false)
	ctx := context.Background()

	var domainErr *domainerror.DomainError

	_, err := NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{
		ExpenseID: created.ID,
		UserID:    "usr_2",
	})
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindNotFound, domainErr.Kind)

	err = NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{
		ExpenseID: created.ID,
		UserID:    "usr_2",
	})
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindNotFound, domainErr.Kind)

	// usr_1 still sees the record.
	output, err := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{UserID: "usr_1"})
	require.NoError(t, err)
	assert.Len(t, output.Expenses, 1)
}

func TestDeleteExpense(t *testing.T) {
	repo := newTestRepo(t)
	created := seedExpense(t, repo, "usr_1", date(2025, time.September, 5), "cat_a", 100, false)
	ctx := context.Background()

	require.NoError(t, NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{
		ExpenseID: created.ID,
		UserID:    "usr_1",
	}))

	err := NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{
		ExpenseID: created.ID,
		UserID:    "usr_1",
	})
	assert.Error(t, err)
}
