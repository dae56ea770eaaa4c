package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbook/backend/internal/domain/valueobject"
)

// Category represents a budget category owned by a single user. Names are
// unique per user, compared case-insensitively.
type Category struct {
	ID     string          `json:"id"`
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

// NewCategory creates a new Category entity with a generated id. A missing
// budget defaults to zero at the use case layer before this constructor runs.
func NewCategory(userID, name string, budget decimal.Decimal) *Category {
	return &Category{
		ID:     valueobject.NewID("cat"),
		UserID: userID,
		Name:   name,
		Budget: budget,
	}
}

// NameEquals reports whether the category name matches the given name under
// the case-insensitive comparison used for uniqueness checks.
func (c Category) NameEquals(name string) bool {
	return strings.EqualFold(c.Name, name)
}
