package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"unicode"
)

// Source identifies the listing site a hackathon was scraped from.
type Source string

const (
	SourceCurated Source = "curated"
	SourceDevpost Source = "devpost"
	SourceMLH     Source = "mlh"
)

// Priority returns the merge precedence for a source. Higher wins when two
// sources report the same hackathon.
func (s Source) Priority() int {
	switch s {
	case SourceCurated:
		return 3
	case SourceDevpost:
		return 2
	case SourceMLH:
		return 1
	default:
		return 0
	}
}

// LocationOnline is the location value the bot filters on for online-only events.
const LocationOnline = "Online"

// HackathonEvent represents one hackathon listing in the merged feed.
type HackathonEvent struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Location  string `json:"location"`
	Source    Source `json:"source"`
}

// Key returns a stable identifier based on the normalized title.
// Records from different sources that describe the same hackathon collapse
// to the same key even when their URLs differ.
func (e HackathonEvent) Key() string {
	h := sha1.New()
	h.Write([]byte(NormalizeTitle(e.Title)))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// IsOnline reports whether the event is marked as online-only.
func (e HackathonEvent) IsOnline() bool {
	return strings.EqualFold(strings.TrimSpace(e.Location), LocationOnline)
}

// Normalize enforces the model invariants on a scraped record: trimmed
// title/URL, a non-empty location, and start_date <= end_date (sources
// occasionally emit the range reversed).
func (e HackathonEvent) Normalize() HackathonEvent {
	e.Title = strings.TrimSpace(e.Title)
	e.URL = strings.TrimSpace(e.URL)
	e.Location = strings.TrimSpace(e.Location)
	if e.Location == "" {
		e.Location = LocationOnline
	}

	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		e.StartDate, e.EndDate = e.EndDate, e.StartDate
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}

	return e
}

// NormalizeTitle lowercases a title, strips punctuation, and collapses
// whitespace so that "HackDavis 2026!" and "hackdavis 2026" compare equal.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Overlaps reports whether two events could be the same occurrence: their
// date ranges intersect, or either range is unknown. An unknown range counts
// as an overlap because several sources omit dates entirely.
func Overlaps(a, b HackathonEvent) bool {
	if a.StartDate.IsZero() || b.StartDate.IsZero() {
		return true
	}
	aEnd := a.EndDate
	if aEnd.IsZero() {
		aEnd = a.StartDate
	}
	bEnd := b.EndDate
	if bEnd.IsZero() {
		bEnd = b.StartDate
	}
	return !aEnd.Before(b.StartDate) && !bEnd.Before(a.StartDate)
}

// DateCompleteness scores how much date information a record carries.
// Used as a merge tie-break between records of equal source priority.
func (e HackathonEvent) DateCompleteness() int {
	n := 0
	if !e.StartDate.IsZero() {
		n++
	}
	if !e.EndDate.IsZero() {
		n++
	}
	return n
}

// Less orders events for the feed: start date ascending with unknown dates
// last, then source priority descending, then title.
func Less(a, b HackathonEvent) bool {
	switch {
	case !a.StartDate.IsZero() && !b.StartDate.IsZero():
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
	case !a.StartDate.IsZero():
		return true
	case !b.StartDate.IsZero():
		return false
	}

	if a.Source.Priority() != b.Source.Priority() {
		return a.Source.Priority() > b.Source.Priority()
	}
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
