package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/hackeroos/hackfeed/internal/event"
	"github.com/hackeroos/hackfeed/internal/fetcher"
)

// MLH reads the Major League Hacking season events JSON.
type MLH struct {
	fetch *fetcher.Fetcher
	url   string
}

// NewMLH creates an MLH source for the given season events URL.
func NewMLH(f *fetcher.Fetcher, url string) *MLH {
	return &MLH{fetch: f, url: url}
}

func (m *MLH) Name() string {
	return string(event.SourceMLH)
}

// mlhEvent mirrors the season JSON. MLH has shipped both camelCase and
// snake_case keys across seasons, so both spellings are decoded and
// coalesced.
type mlhEvent struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Slug       string `json:"slug"`
	StartDate  string `json:"startDate"`
	StartSnake string `json:"start_date"`
	EndDate    string `json:"endDate"`
	EndSnake   string `json:"end_date"`
	Location   string `json:"location"`
	Hybrid     string `json:"hybrid"`
}

func (m *MLH) Fetch(ctx context.Context) ([]event.HackathonEvent, error) {
	body, err := m.fetch.Get(ctx, m.Name(), m.url)
	if err != nil {
		return nil, err
	}
	return m.parse(body)
}

func (m *MLH) parse(body []byte) ([]event.HackathonEvent, error) {
	var raw []mlhEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		// Some seasons wrap the array in a top-level key.
		var wrapped struct {
			Events []mlhEvent `json:"events"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil || wrapped.Events == nil {
			return nil, &ParseError{Source: m.Name(), Err: err}
		}
		raw = wrapped.Events
	}

	events := lo.FilterMap(raw, func(e mlhEvent, _ int) (event.HackathonEvent, bool) {
		url := e.URL
		if url == "" && e.Slug != "" {
			url = fmt.Sprintf("https://mlh.io/events/%s", e.Slug)
		}
		if e.Name == "" || url == "" {
			return event.HackathonEvent{}, false
		}

		location := e.Location
		if location == "" || isDigitalFormat(e.Hybrid) {
			location = event.LocationOnline
		}

		return event.HackathonEvent{
			Title:     e.Name,
			URL:       url,
			StartDate: event.ParseDate(coalesce(e.StartDate, e.StartSnake)),
			EndDate:   event.ParseDate(coalesce(e.EndDate, e.EndSnake)),
			Location:  location,
			Source:    event.SourceMLH,
		}.Normalize(), true
	})

	return events, nil
}

// isDigitalFormat recognizes the values MLH uses for online-only events.
func isDigitalFormat(hybrid string) bool {
	switch hybrid {
	case "digital-only", "online", "virtual":
		return true
	}
	return false
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
