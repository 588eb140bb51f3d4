package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/samber/lo"

	"github.com/hackeroos/hackfeed/internal/event"
)

// Curated reads a hand-maintained JSON file of hackathons the moderators
// want in the feed regardless of what the scrapers find. Curated records
// win every merge conflict.
type Curated struct {
	path string
}

// NewCurated creates a curated source backed by the given file path.
func NewCurated(path string) *Curated {
	return &Curated{path: path}
}

func (c *Curated) Name() string {
	return string(event.SourceCurated)
}

// Fetch loads the curated file. A missing file is not an error; it just
// means the moderators have nothing pinned right now.
func (c *Curated) Fetch(ctx context.Context) ([]event.HackathonEvent, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ParseError{Source: c.Name(), Err: err}
	}

	var raw []event.HackathonEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Source: c.Name(), Err: err}
	}

	events := lo.FilterMap(raw, func(e event.HackathonEvent, _ int) (event.HackathonEvent, bool) {
		if e.Title == "" || e.URL == "" {
			return event.HackathonEvent{}, false
		}
		e.Source = event.SourceCurated
		return e.Normalize(), true
	})

	return events, nil
}
