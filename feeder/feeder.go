package feeder

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

type FeedItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// FetchItems fetches a feed and returns its entries.
// If limit is greater than 0, it returns only the first limit items.
func FetchItems(ctx context.Context, feedURL string, limit int) ([]FeedItem, error) {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: 15 * time.Second}

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	var items []FeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
