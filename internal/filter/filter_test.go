package filter

import (
	"testing"
	"time"

	"github.com/hackeroos/hackfeed/internal/event"
)

func testEvents() []event.HackathonEvent {
	return []event.HackathonEvent{
		{
			Title:     "Global Hack Week: AI",
			URL:       "https://mlh.io/ghw-ai",
			StartDate: event.NewDate(2026, time.March, 6),
			Location:  "Online",
			Source:    event.SourceMLH,
		},
		{
			Title:     "HackDavis",
			URL:       "https://hackdavis.io",
			StartDate: event.NewDate(2026, time.April, 19),
			Location:  "Davis, CA",
			Source:    event.SourceMLH,
		},
		{
			Title:    "Mystery Jam",
			URL:      "https://example.com/jam",
			Location: "Online",
			Source:   event.SourceDevpost,
		},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := &Filter{}
	got := f.Apply(testEvents())
	if len(got) != 3 {
		t.Errorf("expected empty filter to keep all 3 events, got %d", len(got))
	}
}

func TestOnlineOnly(t *testing.T) {
	f := &Filter{OnlineOnly: true}
	got := f.Apply(testEvents())
	if len(got) != 2 {
		t.Fatalf("expected 2 online events, got %d", len(got))
	}
	for _, evt := range got {
		if !evt.IsOnline() {
			t.Errorf("expected only online events, got %s in %s", evt.Title, evt.Location)
		}
	}
}

func TestKeywords(t *testing.T) {
	f := &Filter{Keywords: []string{"hack week", "davis"}}
	got := f.Apply(testEvents())
	if len(got) != 2 {
		t.Fatalf("expected 2 keyword matches, got %d", len(got))
	}
}

func TestDateRange(t *testing.T) {
	f := &Filter{
		From: event.NewDate(2026, time.April, 1),
		To:   event.NewDate(2026, time.April, 30),
	}
	got := f.Apply(testEvents())

	// HackDavis is in range; the undated Mystery Jam always passes.
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Title != "HackDavis" && got[1].Title != "HackDavis" {
		t.Error("expected HackDavis to pass the date range")
	}
}

func TestCombinedCriteria(t *testing.T) {
	f := &Filter{
		OnlineOnly: true,
		Keywords:   []string{"hack week"},
	}
	got := f.Apply(testEvents())
	if len(got) != 1 || got[0].Title != "Global Hack Week: AI" {
		t.Fatalf("expected only Global Hack Week, got %+v", got)
	}
}
