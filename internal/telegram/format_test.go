package telegram

import (
	"strings"
	"testing"
	"time"

	"trendmint/internal/models"
)

func TestTruncate_RuneSafe(t *testing.T) {
	if got := truncate("héllo wörld", 5); got != "héllo" {
		t.Errorf("Expected héllo, got %q", got)
	}
	if got := truncate("short", 60); got != "short" {
		t.Errorf("Short strings should pass through, got %q", got)
	}
}

func TestCommaSep(t *testing.T) {
	if got := commaSep(63250.5); got != "63,250.50" {
		t.Errorf("Expected 63,250.50, got %s", got)
	}
	if got := commaSep(42); got != "42.00" {
		t.Errorf("Expected 42.00, got %s", got)
	}
	if got := commaSep(1234567.891); got != "1,234,567.89" {
		t.Errorf("Expected 1,234,567.89, got %s", got)
	}
	if got := commaSep(-1234.5); got != "-1,234.50" {
		t.Errorf("Expected -1,234.50, got %s", got)
	}
}

func TestFormatTrends_CapAndFooter(t *testing.T) {
	items := make([]string, 12)
	for i := range items {
		items[i] = "trend"
	}
	out := formatTrends(items, time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC))

	if !strings.HasPrefix(out, "📊 *Google Trending Searches*") {
		t.Errorf("Missing header: %q", out[:40])
	}
	if !strings.Contains(out, "🕐 Updated: 09:30:00") {
		t.Error("Missing update timestamp")
	}
	if strings.Contains(out, "11.") {
		t.Error("List should stop at 10 entries")
	}
	if !strings.Contains(out, "💡 Use /generate to create coin ideas!") {
		t.Error("Missing generate footer")
	}
}

func TestFormatReddit_TruncatesAndCaps(t *testing.T) {
	long := strings.Repeat("x", 80)
	posts := []models.RedditPost{
		{Title: long, Score: 4200, Subreddit: "cryptocurrency"},
		{Title: "two"}, {Title: "three"}, {Title: "four"},
		{Title: "five"}, {Title: "six"},
	}
	out := formatReddit(posts)

	if !strings.Contains(out, "1. *"+strings.Repeat("x", 60)+"...*") {
		t.Error("Title should be cut to 60 chars with ellipsis")
	}
	if !strings.Contains(out, "⬆️ 4200 | r/cryptocurrency") {
		t.Error("Missing score line")
	}
	if strings.Contains(out, "6.") {
		t.Error("List should stop at 5 posts")
	}
}

func TestFormatCoins_RankFallback(t *testing.T) {
	coins := []models.TrendingCoin{
		{Name: "Pepe", Symbol: "pepe", MarketCapRank: 42},
		{Name: "Mystery", Symbol: "myst", MarketCapRank: 0},
	}
	out := formatCoins(coins)

	if !strings.Contains(out, "*Pepe* ($PEPE)") {
		t.Error("Symbol should be uppercased")
	}
	if !strings.Contains(out, "Rank: #42") {
		t.Error("Missing rank")
	}
	if !strings.Contains(out, "Rank: #N/A") {
		t.Error("Unranked coins should show N/A")
	}
}

func TestFormatAll_SkipsEmptySections(t *testing.T) {
	snap := models.Snapshot{
		GoogleTrends: []string{"g1", "g2", "g3", "g4"},
		RedditPosts:  []models.RedditPost{{Title: "top post", Score: 99}},
	}
	out := formatAll(snap)

	if !strings.Contains(out, "📊 *Google:* g1, g2, g3") {
		t.Error("Google section should show the top 3")
	}
	if !strings.Contains(out, "🔥 *Reddit:* top post... (99↑)") {
		t.Error("Missing reddit line")
	}
	if strings.Contains(out, "🐦") || strings.Contains(out, "📺") {
		t.Error("Empty sources should be omitted")
	}
	if !strings.Contains(out, "Use specific commands for more details!") {
		t.Error("Missing footer")
	}
}

func TestFormatConcepts_Layout(t *testing.T) {
	concepts := []models.CoinConcept{{
		Name: "DogeMoon", Ticker: "DOGE", Trend: "doge rally",
		Source: "📊 Google", Description: "The official memecoin of doge rally! 🚀",
	}}
	out := formatConcepts(concepts)

	if !strings.Contains(out, "*1. DogeMoon* ($DOGE)") {
		t.Error("Missing concept header line")
	}
	if !strings.Contains(out, "🔍 Source: 📊 Google") {
		t.Error("Missing source line")
	}
	if !strings.Contains(out, "⚠️ *Next Steps:*") {
		t.Error("Missing next-steps footer")
	}
}

func TestFormatMarkets(t *testing.T) {
	out := formatMarkets([]models.MarketQuote{
		{Label: "Bitcoin", Symbol: "BTC", Price: 63250.5},
		{Label: "Gold", Symbol: "GC=F", Price: 2412.3},
	})
	if !strings.Contains(out, "• Bitcoin: $63,250.50") {
		t.Errorf("Missing bitcoin line: %q", out)
	}
	if !strings.Contains(out, "• Gold: $2,412.30") {
		t.Errorf("Missing gold line: %q", out)
	}
}

func TestFormatStatus_SourceLines(t *testing.T) {
	snap := models.Snapshot{
		GoogleTrends: []string{"a"},
		LastUpdate:   time.Now().Add(-90 * time.Second),
		UpdateCount:  3,
	}
	statuses := map[string]models.SourceStatus{
		"google":  {ItemCount: 10},
		"twitter": {LastError: "all instances failed", ErrorCount: 2},
	}
	out := formatStatus(snap, statuses)

	if !strings.Contains(out, "🔄 Update cycles: 3") {
		t.Error("Missing cycle count")
	}
	if !strings.Contains(out, "✅ google: 10 items") {
		t.Error("Missing healthy source line")
	}
	if !strings.Contains(out, "❌ twitter: all instances failed") {
		t.Error("Missing failing source line")
	}
	if strings.Index(out, "google") > strings.Index(out, "twitter") {
		t.Error("Sources should be listed alphabetically")
	}
}

func TestFormatStatus_NeverUpdated(t *testing.T) {
	out := formatStatus(models.Snapshot{}, nil)
	if !strings.Contains(out, "🕐 Last update: never") {
		t.Error("Missing never-updated line")
	}
	if !strings.Contains(out, "(no fetches yet)") {
		t.Error("Missing empty-sources note")
	}
}

func TestFormatFreshTrends_CapAtFive(t *testing.T) {
	fresh := []string{"one", "two", "three", "four", "five", "six"}
	out := formatFreshTrends(fresh)

	if !strings.HasPrefix(out, "🔥 *New Trending Topics Detected!*") {
		t.Error("Missing alert header")
	}
	if strings.Contains(out, "• six") {
		t.Error("Alert should cap at 5 trends")
	}
	if !strings.Contains(out, "\nUse /generate to create coin ideas!") {
		t.Error("Missing footer")
	}
}
