package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hackeroos/hackfeed/internal/event"
)

func sampleResult() *RunResult {
	return &RunResult{
		StartedAt: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC),
		Sources: []SourceResult{
			{Name: "curated", Fetched: 1},
			{Name: "devpost", Error: "fetching devpost: unexpected status code: 503"},
			{Name: "mlh", Fetched: 12},
		},
		Merged: 13,
		NewEvents: []event.HackathonEvent{
			{
				Title:     "HackDavis",
				URL:       "https://hackdavis.io",
				StartDate: event.NewDate(2026, time.April, 19),
				Source:    event.SourceMLH,
			},
		},
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"mlh: 12 events", "devpost: FAILED", "Merged feed: 13 events", "NEW: HackDavis"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "URL:") {
		t.Error("expected no verbose detail without -verbose")
	}
}

func TestWriteOutputTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Date: 2026-04-19", "URL: https://hackdavis.io", "Source: mlh"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected verbose output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteOutputTextNoNewEvents(t *testing.T) {
	result := sampleResult()
	result.NewEvents = nil

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No new events since last run.") {
		t.Errorf("expected no-new-events line, got:\n%s", buf.String())
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded RunResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Merged != 13 {
		t.Errorf("expected merged count 13, got %d", decoded.Merged)
	}
	if len(decoded.NewEvents) != 1 {
		t.Errorf("expected 1 new event, got %d", len(decoded.NewEvents))
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("yaml"), false); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
