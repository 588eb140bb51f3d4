package merge

import (
	"reflect"
	"testing"
	"time"

	"github.com/hackeroos/hackfeed/internal/event"
)

func evt(title, url string, src event.Source, start, end event.Date) event.HackathonEvent {
	return event.HackathonEvent{
		Title:     title,
		URL:       url,
		StartDate: start,
		EndDate:   end,
		Location:  "Online",
		Source:    src,
	}
}

func date(year int, month time.Month, day int) event.Date {
	return event.NewDate(year, month, day)
}

func TestMergeCollapsesByURL(t *testing.T) {
	a := evt("HackDavis", "https://hackdavis.io", event.SourceMLH, date(2026, 4, 19), date(2026, 4, 20))
	b := evt("HackDavis 2026 edition", "https://hackdavis.io", event.SourceDevpost, event.Date{}, event.Date{})

	merged := Merge([]event.HackathonEvent{a}, []event.HackathonEvent{b})
	if len(merged) != 1 {
		t.Fatalf("expected 1 event after URL dedupe, got %d", len(merged))
	}
	if merged[0].Source != event.SourceDevpost {
		t.Errorf("expected devpost record to win on priority, got %s", merged[0].Source)
	}
}

func TestMergeFuzzyTitleAndDateOverlap(t *testing.T) {
	devpost := evt("Global Hack Week: AI", "https://devpost.com/ghw-ai", event.SourceDevpost, date(2026, 3, 6), date(2026, 3, 12))
	mlh := evt("global hack week AI!", "https://mlh.io/events/ghw-ai", event.SourceMLH, date(2026, 3, 6), date(2026, 3, 12))

	merged := Merge([]event.HackathonEvent{devpost}, []event.HackathonEvent{mlh})
	if len(merged) != 1 {
		t.Fatalf("expected fuzzy duplicate to collapse, got %d events", len(merged))
	}
	if merged[0].URL != "https://devpost.com/ghw-ai" {
		t.Errorf("expected higher-priority devpost record to be kept, got %s", merged[0].URL)
	}
}

func TestMergeCuratedBeatsDevpost(t *testing.T) {
	devpost := evt("SunHacks", "https://sunhacks.devpost.com", event.SourceDevpost, date(2026, 4, 19), date(2026, 4, 20))
	curated := evt("SunHacks", "https://sunhacks.io", event.SourceCurated, date(2026, 4, 19), date(2026, 4, 20))

	merged := Merge([]event.HackathonEvent{devpost}, []event.HackathonEvent{curated})
	if len(merged) != 1 {
		t.Fatalf("expected 1 event, got %d", len(merged))
	}
	if merged[0].Source != event.SourceCurated {
		t.Errorf("expected curated record to be retained, got %s", merged[0].Source)
	}
	if merged[0].URL != "https://sunhacks.io" {
		t.Errorf("expected curated URL, got %s", merged[0].URL)
	}
}

func TestMergeSameTitleDifferentDatesStaysSplit(t *testing.T) {
	spring := evt("Recurring Hack", "https://example.com/spring", event.SourceDevpost, date(2026, 4, 1), date(2026, 4, 2))
	autumn := evt("Recurring Hack", "https://example.com/autumn", event.SourceDevpost, date(2026, 10, 1), date(2026, 10, 2))

	merged := Merge([]event.HackathonEvent{spring, autumn})
	if len(merged) != 2 {
		t.Fatalf("expected disjoint occurrences to stay separate, got %d", len(merged))
	}
}

func TestMergeEqualPriorityPrefersCompleteDates(t *testing.T) {
	undated := evt("Twin Hack", "https://example.com/a", event.SourceMLH, event.Date{}, event.Date{})
	dated := evt("Twin Hack", "https://example.com/b", event.SourceMLH, date(2026, 5, 1), date(2026, 5, 2))

	merged := Merge([]event.HackathonEvent{undated, dated})
	if len(merged) != 1 {
		t.Fatalf("expected 1 event, got %d", len(merged))
	}
	if merged[0].URL != "https://example.com/b" {
		t.Errorf("expected record with dates to win the tie, got %s", merged[0].URL)
	}
}

func TestMergeIdempotent(t *testing.T) {
	lists := [][]event.HackathonEvent{
		{
			evt("HackDavis", "https://hackdavis.io", event.SourceMLH, date(2026, 4, 19), date(2026, 4, 20)),
			evt("Global Hack Week", "https://mlh.io/ghw", event.SourceMLH, date(2026, 3, 6), date(2026, 3, 12)),
		},
		{
			evt("HackDavis", "https://hackdavis-2026.devpost.com", event.SourceDevpost, date(2026, 4, 19), date(2026, 4, 20)),
			evt("Undated Jam", "https://example.com/jam", event.SourceDevpost, event.Date{}, event.Date{}),
		},
		{
			evt("Hackeroos Winter Jam", "https://hackeroos.com.au/jam", event.SourceCurated, date(2026, 7, 4), date(2026, 7, 5)),
		},
	}

	once := Merge(lists...)
	twice := Merge(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeURLUniqueness(t *testing.T) {
	lists := [][]event.HackathonEvent{
		{
			evt("A", "https://example.com/1", event.SourceMLH, date(2026, 1, 1), date(2026, 1, 2)),
			evt("B", "https://example.com/1", event.SourceMLH, date(2026, 2, 1), date(2026, 2, 2)),
		},
		{
			evt("C", "https://example.com/2", event.SourceDevpost, date(2026, 3, 1), date(2026, 3, 2)),
			evt("C bis", "https://example.com/2", event.SourceCurated, event.Date{}, event.Date{}),
		},
	}

	merged := Merge(lists...)
	seen := make(map[string]bool)
	for _, e := range merged {
		if seen[e.URL] {
			t.Errorf("duplicate URL in merged feed: %s", e.URL)
		}
		seen[e.URL] = true
	}
}

func TestMergeOrdering(t *testing.T) {
	merged := Merge([]event.HackathonEvent{
		evt("Undated", "https://example.com/u", event.SourceMLH, event.Date{}, event.Date{}),
		evt("June Hack", "https://example.com/june", event.SourceMLH, date(2026, 6, 1), date(2026, 6, 2)),
		evt("March Hack", "https://example.com/march", event.SourceMLH, date(2026, 3, 1), date(2026, 3, 2)),
	})

	if len(merged) != 3 {
		t.Fatalf("expected 3 events, got %d", len(merged))
	}
	if merged[0].Title != "March Hack" || merged[1].Title != "June Hack" || merged[2].Title != "Undated" {
		t.Errorf("unexpected order: %s, %s, %s", merged[0].Title, merged[1].Title, merged[2].Title)
	}
}

func TestMergeSkipsEmptyURL(t *testing.T) {
	merged := Merge([]event.HackathonEvent{
		evt("No URL", "", event.SourceDevpost, date(2026, 1, 1), date(2026, 1, 1)),
		evt("Has URL", "https://example.com/ok", event.SourceDevpost, date(2026, 1, 1), date(2026, 1, 1)),
	})

	if len(merged) != 1 || merged[0].Title != "Has URL" {
		t.Fatalf("expected record without URL to be dropped, got %+v", merged)
	}
}
