package category

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/backend/internal/application/adapter"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/infra/filedb"
	"github.com/finbook/backend/internal/integration/persistence"
)

func newTestRepo(t *testing.T) adapter.CategoryRepository {
	t.Helper()
	return persistence.NewCategoryRepository(filedb.NewStore(t.TempDir()))
}

func TestCreateCategory(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewCreateCategoryUseCase(repo)
	ctx := context.Background()

	output, err := uc.Execute(ctx, CreateCategoryInput{
		UserID: "usr_1",
		Name:   "Home",
		Budget: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.Equal(t, "usr_1", output.Category.UserID)
	assert.Equal(t, "Home", output.Category.Name)
	assert.True(t, output.Category.Budget.Equal(decimal.NewFromInt(800)))

	// Ids carry the entity prefix.
	assert.Regexp(t, `^cat_[0-9a-f]{32}$`, output.Category.ID)
}

func TestCreateCategoryDefaultsBudgetToZero(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestRepo(t))

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: "usr_1",
		Name:   "Misc",
	})
	require.NoError(t, err)
	assert.True(t, output.Category.Budget.IsZero())
}

func TestCreateCategoryDuplicateNameCaseInsensitive(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestRepo(t))
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateCategoryInput{UserID: "usr_1", Name: "Home"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateCategoryInput{UserID: "usr_1", Name: "HOME"})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindConflict, domainErr.Kind)
}

func TestCreateCategorySameNameDifferentUsers(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestRepo(t))
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateCategoryInput{UserID: "usr_1", Name: "Home"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateCategoryInput{UserID: "usr_2", Name: "Home"})
	assert.NoError(t, err)
}

func TestCreateCategoryRejectsNegativeBudget(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestRepo(t))

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: "usr_1",
		Name:   "Home",
		Budget: decimal.NewFromInt(-1),
	})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindValidation, domainErr.Kind)
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestRepo(t))

	_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: "usr_1", Name: "   "})
	assert.Error(t, err)
}
