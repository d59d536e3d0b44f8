package schedule

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day or zone attached.
// Arithmetic and weekday classification use a fixed UTC-midnight epoch, so
// results never drift with the host's local timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for compile-time constants in tests and seeds.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.Time().AddDate(0, 0, days))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysApart returns the absolute whole-day distance between two dates.
func DaysApart(a, b Date) int {
	diff := int(a.Time().Sub(b.Time()) / (24 * time.Hour))
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DateSet is a flat set of blocked calendar dates.
type DateSet map[Date]struct{}

func (s DateSet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}

// BuildHolidaySet expands holiday ranges into the union of their dates.
// Overlapping ranges are idempotent; order never matters.
func BuildHolidaySet(ranges []DateRange) DateSet {
	set := make(DateSet)
	for _, r := range ranges {
		for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
			set[d] = struct{}{}
		}
	}
	return set
}
