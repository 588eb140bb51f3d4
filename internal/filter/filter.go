// Package filter narrows the merged feed before it is written.
//
// The community mostly cares about online hackathons, so the common case is
// OnlineOnly; keyword and date-range criteria cover one-off runs. An empty
// filter matches everything.
package filter

import (
	"strings"

	"github.com/hackeroos/hackfeed/internal/event"
)

// Filter represents feed filtering criteria.
type Filter struct {
	// Keep only events marked as online.
	OnlineOnly bool `json:"online_only,omitempty"`

	// Keyword filtering against the title (case-insensitive substring match).
	Keywords []string `json:"keywords,omitempty"`

	// Date range filtering against the start date. Events with no start
	// date always pass (they cannot be excluded with confidence).
	From event.Date `json:"from,omitempty"`
	To   event.Date `json:"to,omitempty"`
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return !f.OnlineOnly &&
		len(f.Keywords) == 0 &&
		f.From.IsZero() &&
		f.To.IsZero()
}

// Matches checks if an event passes all active criteria.
// An empty filter matches all events.
func (f *Filter) Matches(evt event.HackathonEvent) bool {
	if f.IsEmpty() {
		return true
	}

	if f.OnlineOnly && !evt.IsOnline() {
		return false
	}

	if !evt.StartDate.IsZero() {
		if !f.From.IsZero() && evt.StartDate.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && f.To.Before(evt.StartDate) {
			return false
		}
	}

	if len(f.Keywords) > 0 {
		matched := false
		titleLower := strings.ToLower(evt.Title)
		for _, kw := range f.Keywords {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply returns only the events matching all criteria.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(events []event.HackathonEvent) []event.HackathonEvent {
	if f.IsEmpty() {
		return events
	}

	kept := make([]event.HackathonEvent, 0, len(events))
	for _, evt := range events {
		if f.Matches(evt) {
			kept = append(kept, evt)
		}
	}
	return kept
}
