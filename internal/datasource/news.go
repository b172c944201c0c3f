package datasource

import (
	"fmt"
	"net/http"

	"trendmint/internal/models"

	"github.com/mmcdole/gofeed"
)

const cryptoNewsURL = "https://cointelegraph.com/rss"

// NewsSource reads crypto news headlines from the CoinTelegraph RSS feed.
type NewsSource struct {
	client *http.Client
	cache  *HTTPCache
}

func (s *NewsSource) Name() string  { return "news" }
func (s *NewsSource) Enabled() bool { return true }

func (s *NewsSource) Fetch() (models.Feed, error) {
	body, err := s.cache.Fetch(cryptoNewsURL, s.client)
	if err != nil {
		return models.Feed{}, fmt.Errorf("news fetch: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return models.Feed{}, fmt.Errorf("news parse: %w", err)
	}

	var headlines []models.Headline
	for i, item := range feed.Items {
		if i >= 10 {
			break
		}
		headlines = append(headlines, models.Headline{
			Title:   item.Title,
			Link:    item.Link,
			Summary: htmlToText(item.Description),
		})
	}

	if len(headlines) == 0 {
		return models.Feed{}, fmt.Errorf("news: empty feed")
	}

	return models.Feed{Headlines: headlines}, nil
}
