package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"trendmint/internal/trends"
)

// ---------- startup time for uptime ----------

var startTime = time.Now()

// ---------- command usage counters ----------

type commandStats struct {
	mu     sync.Mutex
	total  int64
	byName map[string]int64
}

var stats = &commandStats{byName: make(map[string]int64)}

// CountCommand records one invocation of a bot command.
func CountCommand(name string) {
	atomic.AddInt64(&stats.total, 1)
	stats.mu.Lock()
	stats.byName[name]++
	stats.mu.Unlock()
}

func commandCounts() (int64, map[string]int64) {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	out := make(map[string]int64, len(stats.byName))
	for k, v := range stats.byName {
		out[k] = v
	}
	return atomic.LoadInt64(&stats.total), out
}

// UptimeHuman returns the process uptime as "1h 2m 3s".
func UptimeHuman() string {
	return formatDuration(time.Since(startTime))
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// StatusHandler returns detailed runtime state: uptime, refresh cycle
// info, per-source health, cache efficiency and command usage.
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(startTime)

	recent := trends.Changes()
	if len(recent) > 20 {
		recent = recent[:20]
	}

	total, byName := commandCounts()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          "ok",
		"uptime_seconds":  int(uptime.Seconds()),
		"uptime_human":    formatDuration(uptime),
		"trends":          trends.Status(),
		"recent_changes":  recent,
		"commands_served": total,
		"commands":        byName,
	})
}
