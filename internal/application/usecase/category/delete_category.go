package category

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID string
	UserID     string
}

// DeleteCategoryUseCase handles category deletion logic.
//
// Deleting a category does not touch expenses or incomes that reference it:
// referential integrity between categoryId and an existing category is not
// enforced anywhere, and reports fall back to the raw id when a category
// cannot be resolved.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	return uc.categoryRepo.Update(ctx, func(categories []entity.Category) ([]entity.Category, error) {
		index := indexOwnedBy(categories, input.CategoryID, input.UserID)
		if index < 0 {
			return nil, domainerror.NewCategoryNotFound()
		}
		return append(categories[:index], categories[index+1:]...), nil
	})
}
