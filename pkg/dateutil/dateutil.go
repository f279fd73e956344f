package dateutil

import (
	"time"

	"github.com/shopspring/decimal"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// MonthsBetween counts whole calendar months from start to end (0 if end is before start)
func MonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// ServiceYears returns creditable service as whole months divided by 12,
// which is how retired pay credits partial years
func ServiceYears(entryDate, separationDate time.Time) decimal.Decimal {
	months := MonthsBetween(entryDate, separationDate)
	return decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
}

// YearsBetween returns the number of whole years from start to end
func YearsBetween(start, end time.Time) int {
	return MonthsBetween(start, end) / 12
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// EndOfYear returns the last instant of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

// ProjectionYear maps a 1-based projection year onto a calendar year
func ProjectionYear(start time.Time, year int) int {
	return start.Year() + year - 1
}
