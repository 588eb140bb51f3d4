package feed

import "github.com/hackeroos/hackfeed/internal/event"

// Diff returns the events in current whose URL was not present in previous.
// The bot notifier posts exactly these.
func Diff(previous, current []event.HackathonEvent) []event.HackathonEvent {
	seen := make(map[string]bool, len(previous))
	for _, e := range previous {
		if e.URL != "" {
			seen[e.URL] = true
		}
	}

	var fresh []event.HackathonEvent
	for _, e := range current {
		if !seen[e.URL] {
			fresh = append(fresh, e)
		}
	}
	return fresh
}
