package renderer

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"summarly/fetcher"
)

// RenderHTML loads a URL in headless Chrome and returns the DOM after client
// side rendering. Used as a fallback for pages whose plain HTTP response
// carries too little text.
func RenderHTML(ctx context.Context, url string) (string, error) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = "/usr/bin/chromium-browser"
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.UserAgent(fetcher.USER_AGENT),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	runCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	runCtx, cancel = context.WithTimeout(runCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}
	return htmlContent, nil
}
