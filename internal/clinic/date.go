package clinic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDateFormat = errors.New("date must be in M/D/YYYY form")

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a plain calendar date with no timezone attached.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a M/D/YYYY string. Fields are not required to be
// zero-padded.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, ErrInvalidDateFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, ErrInvalidDateFormat
		}
		nums[i] = n
	}

	return Date{Year: nums[2], Month: nums[0], Day: nums[1]}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// IsValid reports whether the date exists on the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}

	days := daysInMonth[d.Month-1]
	if d.Month == int(time.February) && isLeapYear(d.Year) {
		days = 29
	}

	return d.Day >= 1 && d.Day <= days
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Compare orders dates lexicographically by year, month, day.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return d.Year - other.Year
	}
	if d.Month != other.Month {
		return d.Month - other.Month
	}
	return d.Day - other.Day
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// IsWeekend reports whether the date falls on a Saturday or Sunday.
// The date must be valid.
func (d Date) IsWeekend() bool {
	wd := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WithinMonths reports whether the date is no later than the given number
// of calendar months after from.
func (d Date) WithinMonths(from Date, months int) bool {
	limit := DateOf(time.Date(from.Year, time.Month(from.Month), from.Day, 0, 0, 0, 0, time.UTC).
		AddDate(0, months, 0))
	return !d.After(limit)
}

// String renders the date as M/D/YYYY without zero-padding the month or day.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%04d", d.Month, d.Day, d.Year)
}
