// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the ISO calendar date format used for all persisted dates.
const dateLayout = "2006-01-02"

// Date is a civil calendar date without a time-of-day or location component.
// The zero value is the zero date and reports IsZero() == true.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "YYYY-MM-DD" string into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid ISO date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// String returns the date formatted as "YYYY-MM-DD".
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Compare returns -1, 0 or 1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
