package valueobject

import (
	"fmt"
	"time"
)

// Period is a calendar month within a specific year. It is the unit every
// report and salary entry is scoped to.
type Period struct {
	Year  int
	Month int
}

// NewPeriod creates a Period for the given year and 1-based month.
func NewPeriod(year, month int) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the Period the given date falls in.
func PeriodOf(d Date) Period {
	return Period{Year: d.Year(), Month: int(d.Month())}
}

// String returns the period formatted as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Compare returns -1, 0 or 1 depending on whether p is chronologically
// before, equal to or after other.
func (p Period) Compare(other Period) int {
	if p.Year != other.Year {
		if p.Year < other.Year {
			return -1
		}
		return 1
	}
	if p.Month != other.Month {
		if p.Month < other.Month {
			return -1
		}
		return 1
	}
	return 0
}

// Days returns the number of days in the period's month, accounting for
// leap years.
func (p Period) Days() int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDay returns the first calendar day of the period.
func (p Period) FirstDay() Date {
	return NewDate(p.Year, time.Month(p.Month), 1)
}

// LastDay returns the last calendar day of the period.
func (p Period) LastDay() Date {
	return NewDate(p.Year, time.Month(p.Month), p.Days())
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(d Date) bool {
	return d.Year() == p.Year && int(d.Month()) == p.Month
}

// DayCapped returns the date in this period with the given day of month,
// capped to the period's last valid day. A day of 31 in a 30-day month
// yields day 30.
func (p Period) DayCapped(day int) Date {
	if max := p.Days(); day > max {
		day = max
	}
	return NewDate(p.Year, time.Month(p.Month), day)
}
