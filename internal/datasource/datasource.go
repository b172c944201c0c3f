package datasource

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"trendmint/internal/config"
	"trendmint/internal/logger"
	"trendmint/internal/models"
)

// DataSource defines the interface for a trending-data source.
type DataSource interface {
	Name() string
	Enabled() bool
	Fetch() (models.Feed, error)
}

// Result is the outcome of one source's fetch.
type Result struct {
	Feed models.Feed
	Err  error
}

// Manager coordinates all data sources.
type Manager struct {
	sources []DataSource
	client  *http.Client
	cache   *HTTPCache
}

// NewManager creates a Manager with all configured data sources.
func NewManager() *Manager {
	client := &http.Client{
		Timeout: config.Cfg.HTTPTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	m := &Manager{client: client, cache: NewHTTPCache()}

	if config.Cfg.SourceGoogle {
		m.sources = append(m.sources, &GoogleTrendsSource{client: client, cache: m.cache})
	}
	if config.Cfg.SourceReddit {
		m.sources = append(m.sources, &RedditSource{client: client, cache: m.cache, subreddits: config.Cfg.RedditSubreddits})
	}
	if config.Cfg.SourceCoinGecko {
		m.sources = append(m.sources, &CoinGeckoSource{client: client})
	}
	if config.Cfg.SourceYouTube {
		m.sources = append(m.sources, &YouTubeSource{client: client, cache: m.cache})
	}
	if config.Cfg.SourceTwitter {
		m.sources = append(m.sources, &NitterSource{client: client, cache: m.cache, instances: config.Cfg.NitterInstances})
	}
	if config.Cfg.SourceNews {
		m.sources = append(m.sources, &NewsSource{client: client, cache: m.cache})
	}
	if config.Cfg.SourceMarkets {
		m.sources = append(m.sources, &MarketsSource{client: client})
	}

	return m
}

// Sources returns the configured sources.
func (m *Manager) Sources() []DataSource {
	return m.sources
}

// CacheStats returns the HTTP fetch cache statistics.
func (m *Manager) CacheStats() CacheStats {
	return m.cache.Stats()
}

// FetchAll runs all enabled sources concurrently and returns per-source
// results keyed by source name. Individual failures never abort the round.
func (m *Manager) FetchAll() map[string]Result {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]Result)
	)

	for _, src := range m.sources {
		if !src.Enabled() {
			continue
		}
		wg.Add(1)
		go func(s DataSource) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Warn("datasource: panic", map[string]interface{}{
						"source": s.Name(), "error": fmt.Sprintf("%v", r),
					})
					mu.Lock()
					results[s.Name()] = Result{Err: fmt.Errorf("panic: %v", r)}
					mu.Unlock()
				}
			}()

			logger.Info("datasource: fetching", map[string]interface{}{"source": s.Name()})
			feed, err := s.Fetch()
			if err != nil {
				logger.Warn("datasource: error", map[string]interface{}{
					"source": s.Name(), "error": err.Error(),
				})
				mu.Lock()
				results[s.Name()] = Result{Err: err}
				mu.Unlock()
				return
			}
			logger.Info("datasource: done", map[string]interface{}{
				"source": s.Name(), "count": feedSize(feed),
			})

			mu.Lock()
			results[s.Name()] = Result{Feed: feed}
			mu.Unlock()
		}(src)
	}

	wg.Wait()
	return results
}

func feedSize(f models.Feed) int {
	return len(f.Trends) + len(f.Posts) + len(f.Coins) + len(f.Headlines) + len(f.Quotes)
}

// fetchURL is a shared helper for sources that bypass the conditional cache.
func fetchURL(client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", config.Cfg.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
}
