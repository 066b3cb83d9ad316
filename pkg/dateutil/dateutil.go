package dateutil

import (
	"fmt"
	"time"
)

// Date is a civil calendar date without time or location.
// It is comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a validated Date
func NewDate(year, month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("year %d is out of range", year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be in 1..12, got %d", month)
	}
	if day < 1 || day > DaysIn(year, time.Month(month)) {
		return Date{}, fmt.Errorf("day is out of range for month: %d-%02d-%02d", year, month, day)
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// DateOf returns the civil date of t in its own location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the start of the date in UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// InMonth reports whether the date falls into the given month
func (d Date) InMonth(year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the month
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// MondayIndex returns the column of the weekday in a Monday-first week (Monday = 0, Sunday = 6)
func MondayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// Today returns today's date
func Today() Date {
	return DateOf(time.Now())
}
