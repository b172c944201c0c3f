package datasource

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"trendmint/internal/config"
	"trendmint/internal/logger"
)

// CacheEntry stores a cached HTTP response.
type CacheEntry struct {
	Body         []byte
	ETag         string
	LastModified string
	FetchedAt    time.Time
}

// CacheStats reports HTTP cache performance.
type CacheStats struct {
	Hits        int `json:"hits"`
	Misses      int `json:"misses"`
	NotModified int `json:"not_modified"`
	StaleServed int `json:"stale_served"`
	BytesSaved  int `json:"bytes_saved"`
}

// HTTPCache is a thread-safe in-memory response cache keyed by URL. It
// issues conditional requests when validators are known and can serve a
// recent stale body when the origin is unreachable.
type HTTPCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	stats   CacheStats
	limiter *domainLimiter
}

const staleMaxAge = 24 * time.Hour

func NewHTTPCache() *HTTPCache {
	return &HTTPCache{
		entries: make(map[string]*CacheEntry),
		limiter: newDomainLimiter(),
	}
}

// Stats returns a copy of current cache statistics.
func (c *HTTPCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Fetch retrieves a URL through the cache. On fetch failure a cached body
// younger than 24h is served instead.
func (c *HTTPCache) Fetch(rawURL string, client *http.Client) ([]byte, error) {
	body, err := c.doFetch(rawURL, client)
	if err == nil {
		return body, nil
	}

	c.mu.Lock()
	entry, ok := c.entries[rawURL]
	if ok && time.Since(entry.FetchedAt) < staleMaxAge {
		c.stats.StaleServed++
		c.mu.Unlock()
		logger.Warn("httpcache: serving stale cache", map[string]interface{}{
			"url": rawURL, "age": time.Since(entry.FetchedAt).String(), "error": err.Error(),
		})
		return entry.Body, nil
	}
	c.mu.Unlock()

	return nil, err
}

func (c *HTTPCache) doFetch(rawURL string, client *http.Client) ([]byte, error) {
	c.limiter.wait(rawURL)

	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", config.Cfg.UserAgent)

	c.mu.RLock()
	entry, cached := c.entries[rawURL]
	c.mu.RUnlock()

	if cached {
		if entry.ETag != "" {
			req.Header.Set("If-None-Match", entry.ETag)
		}
		if entry.LastModified != "" {
			req.Header.Set("If-Modified-Since", entry.LastModified)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && cached {
		c.mu.Lock()
		c.stats.Hits++
		c.stats.NotModified++
		c.stats.BytesSaved += len(entry.Body)
		entry.FetchedAt = time.Now()
		c.mu.Unlock()
		logger.Debug("httpcache: revalidated", map[string]interface{}{
			"url": rawURL, "bytes": len(entry.Body),
		})
		return entry.Body, nil
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, err
	}

	newEntry := &CacheEntry{
		Body:         body,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		FetchedAt:    time.Now(),
	}

	c.mu.Lock()
	if cached {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.entries[rawURL] = newEntry
	c.mu.Unlock()

	return body, nil
}

// --- Per-domain spacing ---

// domainLimiter keeps successive requests to the same host at least
// minDomainGap apart. Sources that walk several pages on one host (the
// subreddit listings) get the pacing for free.
type domainLimiter struct {
	mu       sync.Mutex
	lastCall map[string]time.Time
}

const minDomainGap = 2 * time.Second

func newDomainLimiter() *domainLimiter {
	return &domainLimiter{lastCall: make(map[string]time.Time)}
}

func extractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func (d *domainLimiter) wait(rawURL string) {
	domain := extractDomain(rawURL)
	if domain == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.lastCall[domain]; ok {
		elapsed := time.Since(last)
		if elapsed < minDomainGap {
			d.mu.Unlock()
			time.Sleep(minDomainGap - elapsed)
			d.mu.Lock()
		}
	}

	d.lastCall[domain] = time.Now()
}
