package fetcher

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer loads a page in a real browser and returns the rendered HTML.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ChromeRenderer drives headless Chrome for pages that require JS to
// populate their listings.
type ChromeRenderer struct {
	wait time.Duration
}

// NewChromeRenderer creates a renderer that waits the given duration after
// navigation before capturing the document.
func NewChromeRenderer(wait time.Duration) *ChromeRenderer {
	return &ChromeRenderer{wait: wait}
}

// Render navigates to the URL, lets client-side rendering settle, and
// returns the full document HTML.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.wait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
