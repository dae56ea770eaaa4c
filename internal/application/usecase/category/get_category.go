package category

import (
	"context"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
	domainerror "github.com/finbook/backend/internal/domain/error"
)

// GetCategoryInput represents the input for fetching a single category.
type GetCategoryInput struct {
	CategoryID string
	UserID     string
}

// GetCategoryOutput represents the output of fetching a single category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles single category retrieval.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute fetches a category owned by the user.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.UserID != input.UserID {
		return nil, domainerror.NewCategoryNotFound()
	}
	return &GetCategoryOutput{Category: category}, nil
}
