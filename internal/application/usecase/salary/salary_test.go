package salary

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/backend/internal/application/adapter"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/domain/valueobject"
	"github.com/finbook/backend/internal/infra/filedb"
	"github.com/finbook/backend/internal/integration/persistence"
)

func newTestRepo(t *testing.T) adapter.SalaryRepository {
	t.Helper()
	return persistence.NewSalaryRepository(filedb.NewStore(t.TempDir()))
}

func TestUpsertSalaryCreatesThenReplaces(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpsertSalaryUseCase(repo)
	ctx := context.Background()
	period := valueobject.NewPeriod(2025, 10)

	first, err := uc.Execute(ctx, UpsertSalaryInput{
		UserID: "usr_1",
		Period: period,
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, "sal_usr_1_2025-10", first.Salary.ID)

	second, err := uc.Execute(ctx, UpsertSalaryInput{
		UserID: "usr_1",
		Period: period,
		Amount: decimal.NewFromInt(5500),
	})
	require.NoError(t, err)
	assert.Equal(t, first.Salary.ID, second.Salary.ID)

	// The second upsert replaced rather than duplicated.
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(5500)))
}

func TestUpsertSalaryIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpsertSalaryUseCase(repo)
	ctx := context.Background()
	input := UpsertSalaryInput{
		UserID: "usr_1",
		Period: valueobject.NewPeriod(2025, 10),
		Amount: decimal.NewFromInt(5000),
	}

	_, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	_, err = uc.Execute(ctx, input)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertSalaryRejectsNonPositiveAmount(t *testing.T) {
	uc := NewUpsertSalaryUseCase(newTestRepo(t))

	_, err := uc.Execute(context.Background(), UpsertSalaryInput{
		UserID: "usr_1",
		Period: valueobject.NewPeriod(2025, 10),
		Amount: decimal.Zero,
	})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindValidation, domainErr.Kind)
}

func TestGetSalaryScopedToUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	period := valueobject.NewPeriod(2025, 10)

	_, err := NewUpsertSalaryUseCase(repo).Execute(ctx, UpsertSalaryInput{
		UserID: "usr_1",
		Period: period,
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	output, err := NewGetSalaryUseCase(repo).Execute(ctx, GetSalaryInput{UserID: "usr_1", Period: period})
	require.NoError(t, err)
	assert.True(t, output.Salary.Amount.Equal(decimal.NewFromInt(5000)))

	_, err = NewGetSalaryUseCase(repo).Execute(ctx, GetSalaryInput{UserID: "usr_2", Period: period})
	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindNotFound, domainErr.Kind)
}

func TestListSalariesSortedByPeriod(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpsertSalaryUseCase(repo)
	ctx := context.Background()

	for _, period := range []valueobject.Period{
		valueobject.NewPeriod(2025, 3),
		valueobject.NewPeriod(2024, 12),
		valueobject.NewPeriod(2025, 1),
	} {
		_, err := uc.Execute(ctx, UpsertSalaryInput{
			UserID: "usr_1",
			Period: period,
			Amount: decimal.NewFromInt(5000),
		})
		require.NoError(t, err)
	}

	output, err := NewListSalariesUseCase(repo).Execute(ctx, ListSalariesInput{UserID: "usr_1"})
	require.NoError(t, err)

	require.Len(t, output.Salaries, 3)
	assert.Equal(t, "2024-12", output.Salaries[0].Period().String())
	assert.Equal(t, "2025-01", output.Salaries[1].Period().String())
	assert.Equal(t, "2025-03", output.Salaries[2].Period().String())
}

func TestListSalariesYearFilter(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpsertSalaryUseCase(repo)
	ctx := context.Background()

	for _, period := range []valueobject.Period{
		valueobject.NewPeriod(2024, 12),
		valueobject.NewPeriod(2025, 1),
	} {
		_, err := uc.Execute(ctx, UpsertSalaryInput{
			UserID: "usr_1",
			Period: period,
			Amount: decimal.NewFromInt(5000),
		})
		require.NoError(t, err)
	}

	output, err := NewListSalariesUseCase(repo).Execute(ctx, ListSalariesInput{UserID: "usr_1", Year: 2025})
	require.NoError(t, err)
	require.Len(t, output.Salaries, 1)
	assert.Equal(t, 2025, output.Salaries[0].Year)
}
