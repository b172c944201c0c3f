package datasource

import (
	"net/http"

	"trendmint/internal/logger"
	"trendmint/internal/models"

	"github.com/mmcdole/gofeed"
)

const googleTrendsURL = "https://trends.google.com/trends/trendingsearches/daily/rss?geo=US"

// fallbackTrends stands in when the trends feed is unreachable or empty, so
// downstream commands always have something to chew on.
var fallbackTrends = []string{
	"Bitcoin", "Ethereum", "Solana", "AI Technology",
	"Cryptocurrency News", "Memecoin", "DeFi",
	"NFT Market", "Blockchain", "Web3",
}

// GoogleTrendsSource reads the Google Trends daily searches RSS feed.
type GoogleTrendsSource struct {
	client *http.Client
	cache  *HTTPCache
}

func (s *GoogleTrendsSource) Name() string  { return "google" }
func (s *GoogleTrendsSource) Enabled() bool { return true }

func (s *GoogleTrendsSource) Fetch() (models.Feed, error) {
	body, err := s.cache.Fetch(googleTrendsURL, s.client)
	if err != nil {
		logger.Warn("google: feed unreachable, using fallback topics", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Feed{Trends: fallbackTrends}, nil
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil || len(feed.Items) == 0 {
		logger.Warn("google: feed unparseable, using fallback topics", nil)
		return models.Feed{Trends: fallbackTrends}, nil
	}

	trends := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title != "" {
			trends = append(trends, item.Title)
		}
	}
	if len(trends) == 0 {
		return models.Feed{Trends: fallbackTrends}, nil
	}

	return models.Feed{Trends: firstN(trends, 10)}, nil
}
