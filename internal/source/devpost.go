package source

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hackeroos/hackfeed/internal/event"
	"github.com/hackeroos/hackfeed/internal/fetcher"
)

const devpostBaseURL = "https://devpost.com"

// Devpost scrapes the upcoming-hackathons listing on devpost.com.
// The listing renders client-side, so the fetch goes through the browser
// renderer when one is configured.
type Devpost struct {
	fetch *fetcher.Fetcher
	url   string
}

// NewDevpost creates a Devpost source for the given listing URL.
func NewDevpost(f *fetcher.Fetcher, url string) *Devpost {
	return &Devpost{fetch: f, url: url}
}

func (d *Devpost) Name() string {
	return string(event.SourceDevpost)
}

// Fetch retrieves and parses the Devpost listing page.
func (d *Devpost) Fetch(ctx context.Context) ([]event.HackathonEvent, error) {
	body, err := d.fetch.GetRendered(ctx, d.Name(), d.url)
	if err != nil {
		return nil, err
	}
	return d.parse(body)
}

// parse extracts hackathon records from the listing HTML.
// Devpost changes layout occasionally; the selectors target the current
// tile markup plus the older challenge-listing cards.
func (d *Devpost) parse(body []byte) ([]event.HackathonEvent, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Source: d.Name(), Err: err}
	}

	tiles := doc.Find("div.hackathon-tile, div.challenge-listing")
	if tiles.Length() == 0 {
		return nil, &ParseError{Source: d.Name(), Err: fmt.Errorf("no hackathon tiles found (page structure changed?)")}
	}

	events := make([]event.HackathonEvent, 0, tiles.Length())
	tiles.Each(func(i int, tile *goquery.Selection) {
		link := tile.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = devpostBaseURL + href
		}

		title := strings.TrimSpace(tile.Find("h3").First().Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			return
		}

		start, end := event.ParseDateRange(tile.Find(".submission-period").First().Text())

		location := strings.TrimSpace(tile.Find(".info-with-icon .info span").First().Text())
		if location == "" || strings.EqualFold(location, "online") {
			location = event.LocationOnline
		}

		events = append(events, event.HackathonEvent{
			Title:     title,
			URL:       href,
			StartDate: start,
			EndDate:   end,
			Location:  location,
			Source:    event.SourceDevpost,
		}.Normalize())
	})

	return events, nil
}
