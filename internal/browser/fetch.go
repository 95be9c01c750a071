// Package browser fetches rendered pages through headless Chrome and extracts
// links from their HTML.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single page fetch, navigation included.
const DefaultTimeout = 25 * time.Second

// FetchText navigates to pageURL and returns the rendered body text once the
// document is ready. Each call runs its own browser context; page state is not
// shared between fetches.
func FetchText(ctx context.Context, pageURL string) (string, error) {
	var text string
	err := run(ctx, pageURL, chromedp.Text("body", &text, chromedp.ByQuery))
	if err != nil {
		return "", err
	}
	return text, nil
}

// FetchHTML navigates to pageURL and returns the rendered outer HTML.
func FetchHTML(ctx context.Context, pageURL string) (string, error) {
	var html string
	err := run(ctx, pageURL, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	if err != nil {
		return "", err
	}
	return html, nil
}

func run(ctx context.Context, pageURL string, extract chromedp.Action) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		extract,
	)
	if err != nil {
		return fmt.Errorf("browser: fetch %s: %w", pageURL, err)
	}
	return nil
}
