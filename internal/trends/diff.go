package trends

import (
	"sync"
	"time"

	"trendmint/internal/logger"
)

const maxChangeEvents = 200

// ChangeEvent records something worth noticing between refresh cycles: a
// trend term appearing for the first time, or a source flipping between
// healthy and failing.
type ChangeEvent struct {
	Time   time.Time `json:"time"`
	Source string    `json:"source"`
	Kind   string    `json:"kind"` // "new_trend", "source_error", "source_recovered"
	Detail string    `json:"detail,omitempty"`
}

var (
	changesMu sync.Mutex
	changes   []ChangeEvent
)

// diffTrends returns the terms in new that are absent from old, preserving
// the order of new.
func diffTrends(old, new []string) []string {
	seen := make(map[string]bool, len(old))
	for _, t := range old {
		seen[t] = true
	}

	var fresh []string
	for _, t := range new {
		if !seen[t] {
			fresh = append(fresh, t)
		}
	}
	return fresh
}

func addChange(ev ChangeEvent) {
	ev.Time = time.Now()

	changesMu.Lock()
	changes = append(changes, ev)
	if len(changes) > maxChangeEvents {
		changes = changes[len(changes)-maxChangeEvents:]
	}
	changesMu.Unlock()

	logger.Info("change detected", map[string]interface{}{
		"source": ev.Source, "kind": ev.Kind, "detail": ev.Detail,
	})
}

// Changes returns a copy of recent change events, newest first.
func Changes() []ChangeEvent {
	changesMu.Lock()
	defer changesMu.Unlock()
	result := make([]ChangeEvent, len(changes))
	copy(result, changes)
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}
