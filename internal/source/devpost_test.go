package source

import (
	"os"
	"testing"
	"time"

	"github.com/hackeroos/hackfeed/internal/event"
)

func TestDevpostParse(t *testing.T) {
	data, err := os.ReadFile("testdata/devpost.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	d := NewDevpost(nil, "https://devpost.com/hackathons")
	events, err := d.parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// The fixture has 4 tiles; one has no title and is skipped.
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "SunHacks 2026" {
		t.Errorf("expected title %q, got %q", "SunHacks 2026", first.Title)
	}
	if first.URL != "https://sunhacks-2026.devpost.com/" {
		t.Errorf("unexpected URL: %s", first.URL)
	}
	if !first.StartDate.Equal(event.NewDate(2026, time.April, 19)) {
		t.Errorf("expected start 2026-04-19, got %v", first.StartDate)
	}
	if !first.EndDate.Equal(event.NewDate(2026, time.April, 20)) {
		t.Errorf("expected end 2026-04-20, got %v", first.EndDate)
	}
	if first.Location != "Tempe, AZ" {
		t.Errorf("expected location %q, got %q", "Tempe, AZ", first.Location)
	}
	if first.Source != event.SourceDevpost {
		t.Errorf("expected source devpost, got %s", first.Source)
	}

	second := events[1]
	if second.URL != "https://devpost.com/software/ai-for-good-2026" {
		t.Errorf("expected relative href to be absolutized, got %s", second.URL)
	}
	if second.Location != event.LocationOnline {
		t.Errorf("expected online location, got %q", second.Location)
	}

	// The challenge-listing card has no h3; title comes from the link text.
	third := events[2]
	if third.Title != "Retro Game Jam" {
		t.Errorf("expected title from link text, got %q", third.Title)
	}
	if third.Location != event.LocationOnline {
		t.Errorf("expected missing location to default to online, got %q", third.Location)
	}
}

func TestDevpostParseUnexpectedStructure(t *testing.T) {
	d := NewDevpost(nil, "https://devpost.com/hackathons")

	_, err := d.parse([]byte("<html><body><p>maintenance page</p></body></html>"))
	if err == nil {
		t.Fatal("expected ParseError for page without tiles")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}
