// Package feed persists the merged hackathon list as a JSON array.
//
// The file is fully regenerated on each scrape run and replaced atomically
// (write to a temp file, then rename) so that the bot never observes a
// partially-written feed.
package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"

	"github.com/hackeroos/hackfeed/internal/event"
)

// Load reads the feed file. A missing file is an empty feed, not an error.
func Load(path string) ([]event.HackathonEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	var events []event.HackathonEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return events, nil
}

// Write serializes the events to the feed file, replacing it atomically.
// This is the only failure in a scrape run that is fatal.
func Write(path string, events []event.HackathonEvent) error {
	if events == nil {
		events = []event.HackathonEvent{}
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating feed directory: %w", err)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	return nil
}

// Trim drops events that are already over and caps the list at max entries.
// The input is expected to be ordered; the cap keeps the head of the list.
func Trim(events []event.HackathonEvent, now time.Time, max int) []event.HackathonEvent {
	kept := make([]event.HackathonEvent, 0, len(events))
	for _, e := range events {
		if e.IsPast(now) {
			continue
		}
		kept = append(kept, e)
	}

	if max > 0 && len(kept) > max {
		kept = kept[:max]
	}
	return kept
}
