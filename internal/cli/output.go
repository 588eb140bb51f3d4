package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hackeroos/hackfeed/internal/event"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// SourceResult summarizes one source's part of a run.
type SourceResult struct {
	Name    string `json:"name"`
	Fetched int    `json:"fetched"`
	Error   string `json:"error,omitempty"`
}

// RunResult summarizes one scrape run.
type RunResult struct {
	StartedAt time.Time              `json:"started_at"`
	Sources   []SourceResult         `json:"sources"`
	Merged    int                    `json:"merged"`
	NewEvents []event.HackathonEvent `json:"new_events"`
}

// WriteOutput writes the run summary in the specified format.
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *RunResult, verbose bool) error {
	for _, src := range result.Sources {
		if src.Error != "" {
			fmt.Fprintf(w, "%s: FAILED (%s)\n", src.Name, src.Error)
			continue
		}
		fmt.Fprintf(w, "%s: %d events\n", src.Name, src.Fetched)
	}

	fmt.Fprintf(w, "\nMerged feed: %d events\n", result.Merged)

	if len(result.NewEvents) == 0 {
		fmt.Fprintln(w, "No new events since last run.")
		return nil
	}

	fmt.Fprintf(w, "New since last run: %d\n", len(result.NewEvents))
	for _, evt := range result.NewEvents {
		fmt.Fprintf(w, "  NEW: %s\n", evt.Title)
		if verbose {
			if !evt.StartDate.IsZero() {
				fmt.Fprintf(w, "       Date: %s\n", evt.StartDate.Format("2006-01-02"))
			}
			fmt.Fprintf(w, "       URL: %s\n", evt.URL)
			fmt.Fprintf(w, "       Source: %s\n", evt.Source)
		}
	}

	return nil
}
