package error

import "errors"

// Income, expense and salary domain errors.
var (
	// ErrIncomeNotFound is returned when an income does not exist or belongs
	// to another user.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrExpenseNotFound is returned when an expense does not exist or
	// belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrSalaryNotFound is returned when no salary is recorded for a period.
	ErrSalaryNotFound = errors.New("salary not found for period")

	// ErrInvalidPaymentMethod is returned for unknown payment methods.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrNonPositiveAmount is returned when an amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Ledger error codes.
const (
	ErrCodeIncomeNotFound       = "INC-010001"
	ErrCodeExpenseNotFound      = "EXP-010001"
	ErrCodeInvalidPaymentMethod = "EXP-010002"
	ErrCodeSalaryNotFound       = "SAL-010001"
	ErrCodeNonPositiveAmount    = "LDG-010001"
)

// NewIncomeNotFound creates the not-found error for incomes.
func NewIncomeNotFound() *DomainError {
	return New(KindNotFound, ErrCodeIncomeNotFound, "income not found", ErrIncomeNotFound)
}

// NewExpenseNotFound creates the not-found error for expenses.
func NewExpenseNotFound() *DomainError {
	return New(KindNotFound, ErrCodeExpenseNotFound, "expense not found", ErrExpenseNotFound)
}

// NewSalaryNotFound creates the not-found error for salaries.
func NewSalaryNotFound() *DomainError {
	return New(KindNotFound, ErrCodeSalaryNotFound, "salary not found for period", ErrSalaryNotFound)
}

// NewInvalidPaymentMethod creates the validation error for unknown payment
// methods.
func NewInvalidPaymentMethod() *DomainError {
	return New(KindValidation, ErrCodeInvalidPaymentMethod, "payment method must be one of credit_card, debit, pix, cash", ErrInvalidPaymentMethod)
}

// NewNonPositiveAmount creates the validation error for non-positive amounts.
func NewNonPositiveAmount() *DomainError {
	return New(KindValidation, ErrCodeNonPositiveAmount, "amount must be greater than zero", ErrNonPositiveAmount)
}
