package source

import (
	"context"
	"fmt"

	"github.com/hackeroos/hackfeed/internal/config"
	"github.com/hackeroos/hackfeed/internal/event"
	"github.com/hackeroos/hackfeed/internal/fetcher"
)

// Source produces normalized hackathon records from one listing site.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]event.HackathonEvent, error)
}

// ParseError indicates a page fetched fine but its structure did not match
// what the parser expects, usually after a site redesign.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Enabled assembles the sources named in the config, in config order.
// Unknown source names are skipped.
func Enabled(cfg config.Config, f *fetcher.Fetcher) []Source {
	var sources []Source
	for _, name := range cfg.Sources {
		switch name {
		case "curated":
			sources = append(sources, NewCurated(cfg.CuratedPath))
		case "devpost":
			sources = append(sources, NewDevpost(f, cfg.DevpostURL))
		case "mlh":
			sources = append(sources, NewMLH(f, cfg.MLHURL))
		}
	}
	return sources
}
