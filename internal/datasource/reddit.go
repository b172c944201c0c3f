package datasource

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"trendmint/internal/logger"
	"trendmint/internal/models"
)

// RedditSource pulls the hottest posts from a set of crypto subreddits.
// Listings are fetched one subreddit at a time; the domain limiter keeps
// the pacing polite.
type RedditSource struct {
	client     *http.Client
	cache      *HTTPCache
	subreddits []string
}

func (s *RedditSource) Name() string  { return "reddit" }
func (s *RedditSource) Enabled() bool { return true }

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Score     int    `json:"score"`
				Permalink string `json:"permalink"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (s *RedditSource) Fetch() (models.Feed, error) {
	var posts []models.RedditPost

	for _, sub := range s.subreddits {
		url := fmt.Sprintf("https://www.reddit.com/r/%s/hot.json?limit=5", sub)
		body, err := s.cache.Fetch(url, s.client)
		if err != nil {
			logger.Warn("reddit: subreddit fetch failed", map[string]interface{}{
				"subreddit": sub, "error": err.Error(),
			})
			continue
		}

		var listing redditListing
		if err := json.Unmarshal(body, &listing); err != nil {
			logger.Warn("reddit: listing parse failed", map[string]interface{}{
				"subreddit": sub, "error": err.Error(),
			})
			continue
		}

		for _, child := range listing.Data.Children {
			posts = append(posts, models.RedditPost{
				Title:     child.Data.Title,
				Score:     child.Data.Score,
				Subreddit: sub,
				URL:       "https://reddit.com" + child.Data.Permalink,
			})
		}
	}

	if len(posts) == 0 {
		return models.Feed{}, fmt.Errorf("reddit: no posts from %d subreddits", len(s.subreddits))
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Score > posts[j].Score })
	if len(posts) > 10 {
		posts = posts[:10]
	}

	return models.Feed{Posts: posts}, nil
}
