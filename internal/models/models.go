package models

import "time"

type RedditPost struct {
	Title     string `json:"title"`
	Score     int    `json:"score"`
	Subreddit string `json:"subreddit"`
	URL       string `json:"url"`
}

type TrendingCoin struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank int     `json:"market_cap_rank"`
	PriceBTC      float64 `json:"price_btc"`
}

type Headline struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary,omitempty"`
}

type MarketQuote struct {
	Label  string  `json:"label"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

type CoinConcept struct {
	ID          string `json:"id"`
	Trend       string `json:"trend"`
	Source      string `json:"source"`
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	Description string `json:"description"`
	GeneratedAt string `json:"generated_at"`
}

// Feed is one source's haul for a single fetch. Each source fills only
// the fields it produces.
type Feed struct {
	Trends    []string       `json:"trends,omitempty"`
	Posts     []RedditPost   `json:"posts,omitempty"`
	Coins     []TrendingCoin `json:"coins,omitempty"`
	Headlines []Headline     `json:"headlines,omitempty"`
	Quotes    []MarketQuote  `json:"quotes,omitempty"`
}

// Snapshot is the full cached state across all sources.
type Snapshot struct {
	GoogleTrends  []string       `json:"google_trends"`
	TwitterTrends []string       `json:"twitter_trends"`
	YouTubeTitles []string       `json:"youtube_trending"`
	RedditPosts   []RedditPost   `json:"reddit_trending"`
	TrendingCoins []TrendingCoin `json:"coingecko_trending"`
	NewsHeadlines []Headline     `json:"crypto_news"`
	MarketQuotes  []MarketQuote  `json:"market_quotes"`
	LastUpdate    time.Time      `json:"last_update"`
	UpdateCount   int64          `json:"update_count"`
}

func (s Snapshot) Empty() bool {
	return len(s.GoogleTrends) == 0 && len(s.TwitterTrends) == 0 &&
		len(s.YouTubeTitles) == 0 && len(s.RedditPosts) == 0 &&
		len(s.TrendingCoins) == 0 && len(s.NewsHeadlines) == 0 &&
		len(s.MarketQuotes) == 0
}

func (s Snapshot) TotalItems() int {
	return len(s.GoogleTrends) + len(s.TwitterTrends) + len(s.YouTubeTitles) +
		len(s.RedditPosts) + len(s.TrendingCoins) + len(s.NewsHeadlines) +
		len(s.MarketQuotes)
}

type SourceStatus struct {
	LastSuccess time.Time `json:"last_success,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
	ErrorCount  int       `json:"error_count"`
	ItemCount   int       `json:"item_count"`
}
