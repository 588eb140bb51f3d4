package event

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a calendar date (no time component) that serializes as
// "YYYY-MM-DD" and as null when unknown.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its UTC calendar date.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed := ParseDate(*s)
	*d = parsed
	return nil
}

// Before is date-granular: two timestamps on the same day compare equal.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// ParseDate parses a date string from any of the listing sites.
// It tries the formats the sources actually emit before falling back to
// dateparse for the long tail. Returns the zero Date if nothing matches.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}

	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"Jan 2, 2006",
		"Jan 2 2006",
		"January 2, 2006",
		"01/02/2006",
		"01/02/06",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return DateOf(t)
	}

	return Date{}
}

var monthPattern = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\b`)

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// ParseDateRange parses Devpost-style submission periods into a start and
// end date. Handled shapes:
//
//	"Nov 14 - 21, 2025"           (month and year shared)
//	"Nov 28 - Dec 12, 2025"       (year shared)
//	"Dec 01, 2025 - Jan 15, 2026" (fully qualified)
//	"Apr 19, 2026"                (single day)
//
// Either or both dates may come back zero when the text does not match.
func ParseDateRange(s string) (Date, Date) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, Date{}
	}

	// Normalize the dash variants sites use.
	for _, dash := range []string{"–", "—"} {
		s = strings.ReplaceAll(s, dash, "-")
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		d := ParseDate(parts[0])
		return d, d
	}

	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	// "Nov 14 - 21, 2025": the right side has no month of its own.
	var end Date
	if monthPattern.FindString(right) == "" {
		if month := monthPattern.FindString(left); month != "" {
			end = ParseDate(month + " " + right)
		}
	}
	if end.IsZero() {
		end = ParseDate(right)
	}

	// "Nov 14" on the left borrows the year from the right side.
	var start Date
	if yearPattern.FindString(left) == "" {
		if year := yearPattern.FindString(right); year != "" {
			start = ParseDate(left + ", " + year)
		}
	}
	if start.IsZero() {
		start = ParseDate(left)
	}

	if start.IsZero() && end.IsZero() {
		return Date{}, Date{}
	}
	return start, end
}

// IsPast reports whether the event is already over relative to now.
// Events with no parseable dates are kept (safer default).
func (e HackathonEvent) IsPast(now time.Time) bool {
	last := e.EndDate
	if last.IsZero() {
		last = e.StartDate
	}
	if last.IsZero() {
		return false
	}
	return last.Before(DateOf(now))
}
