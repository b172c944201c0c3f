package trends

import (
	"fmt"
	"sync"
	"time"

	"trendmint/internal/config"
	"trendmint/internal/datasource"
	"trendmint/internal/logger"
	"trendmint/internal/models"
	sentryutil "trendmint/internal/sentry"
)

// RefreshResult summarizes one refresh cycle.
type RefreshResult struct {
	Fresh []string // trend terms not present in the previous snapshot
	When  time.Time
	Total int
}

// OnRefreshComplete is called at the end of each refresh cycle.
// Set from main.go before the scheduler starts.
var OnRefreshComplete func(RefreshResult)

var (
	mgrOnce sync.Once
	mgr     *datasource.Manager
)

func manager() *datasource.Manager {
	mgrOnce.Do(func() { mgr = datasource.NewManager() })
	return mgr
}

var refreshMu sync.Mutex

// RefreshAll runs every enabled source and swaps the cache. Concurrent
// callers coalesce: whoever arrives while a refresh is in flight waits for
// it and returns without fetching again. The returned error is non-nil only
// when every source failed.
func RefreshAll() error {
	before := updateCount()
	refreshMu.Lock()
	defer refreshMu.Unlock()
	if updateCount() != before {
		return nil
	}
	return runRefresh()
}

func runRefresh() error {
	logger.Info("trends: refreshing all sources", nil)
	old := Snapshot()

	results := manager().FetchAll()

	next := old
	failures := 0
	for name, res := range results {
		if res.Err != nil {
			failures++
			if setSourceError(name, res.Err.Error()) {
				addChange(ChangeEvent{Source: name, Kind: "source_error", Detail: res.Err.Error()})
			}
			sentryutil.CaptureError(res.Err, map[string]string{"source": name})
			continue
		}

		switch name {
		case "google":
			next.GoogleTrends = res.Feed.Trends
		case "twitter":
			next.TwitterTrends = res.Feed.Trends
		case "youtube":
			next.YouTubeTitles = res.Feed.Trends
		case "reddit":
			next.RedditPosts = res.Feed.Posts
		case "coingecko":
			next.TrendingCoins = res.Feed.Coins
		case "news":
			next.NewsHeadlines = res.Feed.Headlines
		case "markets":
			next.MarketQuotes = res.Feed.Quotes
		}

		if setSourceOK(name, feedItems(res.Feed)) {
			addChange(ChangeEvent{Source: name, Kind: "source_recovered"})
		}
	}

	// No baseline, no diff: the very first fill must not look like a wall
	// of brand-new trends.
	var fresh []string
	if !old.LastUpdate.IsZero() {
		fresh = diffTrends(old.GoogleTrends, next.GoogleTrends)
		for _, t := range fresh {
			addChange(ChangeEvent{Source: "google", Kind: "new_trend", Detail: t})
		}
	}

	storeSnapshot(next)
	snap := Snapshot()

	logger.Info("trends: cache updated", map[string]interface{}{
		"total": snap.TotalItems(), "cycle": snap.UpdateCount, "fresh": len(fresh),
	})

	if OnRefreshComplete != nil {
		OnRefreshComplete(RefreshResult{Fresh: fresh, When: snap.LastUpdate, Total: snap.TotalItems()})
	}

	if failures > 0 && failures == len(results) {
		sentryutil.CaptureMessage("trends: every source failed this cycle",
			sentryutil.LevelWarning(), map[string]string{"component": "scheduler"})
		return fmt.Errorf("trends: all %d sources failed", failures)
	}
	return nil
}

func feedItems(f models.Feed) int {
	return len(f.Trends) + len(f.Posts) + len(f.Coins) + len(f.Headlines) + len(f.Quotes)
}

// EnsureLoaded refreshes synchronously when the cache has never been
// filled. Returns true when a fetch actually ran, so callers can tell the
// user to hang on.
func EnsureLoaded() bool {
	if !Snapshot().Empty() {
		return false
	}
	RefreshAll()
	return true
}

// StartScheduler launches the background refresh loop: an initial fill,
// then one cycle per configured interval. A cycle that panics or loses
// every source backs off to the error retry interval.
func StartScheduler() {
	go func() {
		logger.Info("trends: background monitor started", map[string]interface{}{
			"interval": config.Cfg.UpdateInterval.String(),
		})
		safeRefresh()
		for {
			time.Sleep(config.Cfg.UpdateInterval)
			if err := safeRefresh(); err != nil {
				logger.Error("trends: refresh cycle failed", map[string]interface{}{"error": err.Error()})
				time.Sleep(config.Cfg.ErrorRetryInterval)
			}
		}
	}()
}

func safeRefresh() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("refresh panic: %v", r)
			sentryutil.CaptureError(err, map[string]string{"component": "scheduler"})
		}
	}()
	return RefreshAll()
}

// Status returns a status map for the ops endpoint and the status command.
func Status() map[string]interface{} {
	snap := Snapshot()
	return map[string]interface{}{
		"last_run":         snap.LastUpdate,
		"next_run":         snap.LastUpdate.Add(config.Cfg.UpdateInterval),
		"update_count":     snap.UpdateCount,
		"total_items":      snap.TotalItems(),
		"sources":          SourceStatuses(),
		"http_cache_stats": manager().CacheStats(),
	}
}
