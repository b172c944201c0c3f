package trends

import (
	"sync"
	"time"

	"trendmint/internal/models"
)

// TrendCache holds the latest snapshot and per-source status information.
// Snapshot slices are replaced wholesale on update and never mutated in
// place, so readers can hold them without copying.
type TrendCache struct {
	mu       sync.RWMutex
	snapshot models.Snapshot
	statuses map[string]models.SourceStatus
}

var cache = &TrendCache{
	statuses: make(map[string]models.SourceStatus),
}

// Snapshot returns the current cached snapshot.
func Snapshot() models.Snapshot {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.snapshot
}

// LastUpdate returns when the cache was last refreshed (zero before the
// first fill).
func LastUpdate() time.Time {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.snapshot.LastUpdate
}

func updateCount() int64 {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return cache.snapshot.UpdateCount
}

func storeSnapshot(s models.Snapshot) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	s.LastUpdate = time.Now()
	s.UpdateCount = cache.snapshot.UpdateCount + 1
	cache.snapshot = s
}

// SourceStatuses returns a copy of the per-source status map.
func SourceStatuses() map[string]models.SourceStatus {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	out := make(map[string]models.SourceStatus, len(cache.statuses))
	for k, v := range cache.statuses {
		out[k] = v
	}
	return out
}

// setSourceOK records a successful fetch and returns whether the source was
// previously failing.
func setSourceOK(name string, items int) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	st := cache.statuses[name]
	recovered := st.LastError != ""
	st.LastSuccess = time.Now()
	st.LastError = ""
	st.ItemCount = items
	cache.statuses[name] = st
	return recovered
}

// setSourceError records a failed fetch and returns whether the source was
// previously healthy.
func setSourceError(name string, errMsg string) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	st := cache.statuses[name]
	flipped := st.LastError == ""
	st.LastError = errMsg
	st.ErrorCount++
	cache.statuses[name] = st
	return flipped
}
