package category

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

func seedCategory(t *testing.T, repo adapter.CategoryRepository, userID, name string, budget int64) *entity.Category {
	t.Helper()
	output, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Name:   name,
		Budget: decimal.NewFromInt(budget),
	})
	require.NoError(t, err)
	return output.Category
}

func strPtr(s string) *string { return &s }

func TestUpdateCategoryRename(t *testing.T) {
	repo := newTestRepo(t)
	created := seedCategory(t, repo, "usr_1", "Home", 800)

	output, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_1",
		Name:       strPtr("Household"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Household", output.Category.Name)
	// Untouched fields persist.
	assert.True(t, output.Category.Budget.Equal(decimal.NewFromInt(800)))
}

func TestUpdateCategoryRenameToExistingNameConflicts(t *testing.T) {
	repo := newTestRepo(t)
	seedCategory(t, repo, "usr_1", "Home", 800)
	other := seedCategory(t, repo, "usr_1", "Leisure", 300)

	_, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: other.ID,
		UserID:     "usr_1",
		Name:       strPtr("home"),
	})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindConflict, domainErr.Kind)
}

func TestUpdateCategoryKeepingOwnNameIsAllowed(t *testing.T) {
	repo := newTestRepo(t)
	created := seedCategory(t, repo, "usr_1", "Home", 800)

	budget := decimal.NewFromInt(900)
	output, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_1",
		Name:       strPtr("Home"),
		Budget:     &budget,
	})
	require.NoError(t, err)
	assert.True(t, output.Category.Budget.Equal(budget))
}

func TestUpdateCategoryOwnedByAnotherUserIsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	created := seedCategory(t, repo, "usr_1", "Home", 800)

	_, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_2",
		Name:       strPtr("Hijacked"),
	})
	require.Error(t, err)

	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindNotFound, domainErr.Kind)
}

func TestDeleteCategory(t *testing.T) {
	repo := newTestRepo(t)
	created := seedCategory(t, repo, "usr_1", "Home", 800)
	ctx := context.Background()

	require.NoError(t, NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_1",
	}))

	// Second delete fails: the record is gone.
	err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_1",
	})
	var domainErr *domainerror.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domainerror.KindNotFound, domainErr.Kind)
}

func TestDeleteCategoryOwnedByAnotherUserIsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	created := seedCategory(t, repo, "usr_1", "Home", 800)

	err := NewDeleteCategoryUseCase(repo).Execute(context.Background(), DeleteCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_2",
	})
	require.Error(t, err)

	// The failed delete must not have removed usr_1's record.
	output, err := NewGetCategoryUseCase(repo).Execute(context.Background(), GetCategoryInput{
		CategoryID: created.ID,
		UserID:     "usr_1",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, output.Category.ID)
}

func TestListCategoriesSortedByNameScopedToUser(t *testing.T) {
	repo := newTestRepo(t)
	seedCategory(t, repo, "usr_1", "leisure", 300)
	seedCategory(t, repo, "usr_1", "Home", 800)
	seedCategory(t, repo, "usr_2", "Alien", 100)

	output, err := NewListCategoriesUseCase(repo).Execute(context.Background(), ListCategoriesInput{UserID: "usr_1"})
	require.NoError(t, err)

	require.Len(t, output.Categories, 2)
	assert.Equal(t, "Home", output.Categories[0].Name)
	assert.Equal(t, "leisure", output.Categories[1].Name)
}
