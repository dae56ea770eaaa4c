package error

import "errors"

// ErrInvalidPeriod is returned when a report period is outside the supported
// calendar range.
var ErrInvalidPeriod = errors.New("invalid report period")

// Report error codes.
const (
	ErrCodeInvalidPeriod = "RPT-010001"
)

// NewInvalidPeriod creates the validation error for out-of-range periods.
func NewInvalidPeriod() *DomainError {
	return New(KindValidation, ErrCodeInvalidPeriod, "year must be between 1900 and 2100 and month between 1 and 12", ErrInvalidPeriod)
}
