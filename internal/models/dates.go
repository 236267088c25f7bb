package models

import (
	"strconv"
	"time"
)

// DateLayout is the ISO-8601 layout every stored date uses
const DateLayout = time.RFC3339

// FormatDate renders a timestamp in the stored layout. Offsets are normalized
// to UTC, so a date is counted in its UTC year: 2019-12-31T23:30:00-05:00 is
// stored as 2020-01-01T04:30:00Z and belongs to 2020.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// YearOf returns the year prefix of a stored date
func YearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[0:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// InYear checks if the stored date falls in the given year
func InYear(date string, year int) bool {
	y, ok := YearOf(date)
	return ok && y == year
}

// EarlierDate returns the earlier of two stored dates, ignoring empty values
func EarlierDate(current, candidate string) string {
	if current == "" || (candidate != "" && candidate < current) {
		return candidate
	}
	return current
}
