// Package adapter defines interfaces that will be implemented in the
// integration layer. Every repository exposes whole-collection reads and
// replacements plus an Update method that runs a read-modify-write as one
// exclusive critical section against the backing file.
package adapter

import (
	"context"

	"github.com/finbook/backend/internal/domain/entity"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID returns nil when no user with the id exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	SaveAll(ctx context.Context, users []entity.User) error
	Update(ctx context.Context, fn func(users []entity.User) ([]entity.User, error)) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	SaveAll(ctx context.Context, categories []entity.Category) error
	Update(ctx context.Context, fn func(categories []entity.Category) ([]entity.Category, error)) error
}

// IncomeRepository defines persistence operations for incomes.
type IncomeRepository interface {
	FindAll(ctx context.Context) ([]entity.Income, error)
	FindByID(ctx context.Context, id string) (*entity.Income, error)
	SaveAll(ctx context.Context, incomes []entity.Income) error
	Update(ctx context.Context, fn func(incomes []entity.Income) ([]entity.Income, error)) error
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	FindAll(ctx context.Context) ([]entity.Expense, error)
	FindByID(ctx context.Context, id string) (*entity.Expense, error)
	SaveAll(ctx context.Context, expenses []entity.Expense) error
	Update(ctx context.Context, fn func(expenses []entity.Expense) ([]entity.Expense, error)) error
}

// SalaryRepository defines persistence operations for salaries.
type SalaryRepository interface {
	FindAll(ctx context.Context) ([]entity.Salary, error)
	FindByID(ctx context.Context, id string) (*entity.Salary, error)
	SaveAll(ctx context.Context, salaries []entity.Salary) error
	Update(ctx context.Context, fn func(salaries []entity.Salary) ([]entity.Salary, error)) error
}
