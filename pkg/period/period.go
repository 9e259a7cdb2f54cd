// Package period does the calendar arithmetic behind the plan hierarchy:
// canonical period dates, parents and previous siblings. Every function
// works on UTC midnight dates and never touches storage.
package period

import (
	"fmt"
	"time"

	"lifeplan/entities"
	"lifeplan/pkg/apperr"
)

const Layout = "2006-01-02"

type Type string

const (
	Year  Type = entities.PlanYear
	Month Type = entities.PlanMonth
	Week  Type = entities.PlanWeek
	Day   Type = entities.PlanDay
)

// Ref names a plan by type and canonical date without asserting it exists.
type Ref struct {
	Type Type   `json:"type"`
	Date string `json:"date"`
}

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Year, Month, Week, Day:
		return t, nil
	}
	return "", apperr.Invalid("unknown plan type %q", s)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, apperr.Invalid("date %q is not YYYY-MM-DD", s)
	}
	return d, nil
}

func Format(d time.Time) string { return d.Format(Layout) }

// Today is the calendar date of now in loc, as a UTC midnight.
func Today(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Normalize truncates d to the start of its period: Jan 1, the 1st of the
// month, the ISO-week Monday, or the day itself.
func Normalize(t Type, d time.Time) time.Time {
	y, m, day := d.Date()
	switch t {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case Week:
		wd := int(d.Weekday())
		if wd == 0 {
			wd = 7
		}
		return time.Date(y, m, day-(wd-1), 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
}

// Canonical parses a raw type and date pair into a normalized Ref.
func Canonical(rawType, rawDate string) (Ref, error) {
	t, err := ParseType(rawType)
	if err != nil {
		return Ref{}, err
	}
	d, err := ParseDate(rawDate)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Type: t, Date: Format(Normalize(t, d))}, nil
}

// ParentOf returns the enclosing period: day and week roll up to their
// month, month to its year. Years have no parent.
func ParentOf(t Type, d time.Time) (Ref, bool) {
	switch t {
	case Day, Week:
		return Ref{Type: Month, Date: Format(Normalize(Month, Normalize(t, d)))}, true
	case Month:
		return Ref{Type: Year, Date: Format(Normalize(Year, d))}, true
	}
	return Ref{}, false
}

// PreviousPeriodOf returns the sibling period just before d for months and
// weeks. Days step back inline at the call site.
func PreviousPeriodOf(t Type, d time.Time) (Ref, bool) {
	switch t {
	case Month:
		first := Normalize(Month, d)
		return Ref{Type: Month, Date: Format(Normalize(Month, first.AddDate(0, 0, -1)))}, true
	case Week:
		return Ref{Type: Week, Date: Format(Normalize(Week, d).AddDate(0, 0, -7))}, true
	}
	return Ref{}, false
}

func (r Ref) String() string { return fmt.Sprintf("%s/%s", r.Type, r.Date) }

// Time returns the Ref date; it panics on a Ref not built by this package.
func (r Ref) Time() time.Time {
	d, err := time.Parse(Layout, r.Date)
	if err != nil {
		panic(fmt.Sprintf("period: malformed ref %s", r))
	}
	return d
}
