package generator

import (
	"strings"
	"testing"
	"time"

	"trendmint/internal/models"
)

func TestCoinName_TwoWordTrend(t *testing.T) {
	SetSeed(1)
	valid := map[string]bool{
		"BitcoinCoin": true, "BitcoinToken": true, "BitcoinETF": true,
		"BitcoinInu": true, "BabyBitcoin": true, "BitcoinMoon": true,
	}
	for i := 0; i < 50; i++ {
		name := CoinName("Bitcoin ETF")
		if !valid[name] {
			t.Fatalf("Unexpected name %q for trend 'Bitcoin ETF'", name)
		}
	}
}

func TestCoinName_OneWordTrend(t *testing.T) {
	SetSeed(2)
	valid := map[string]bool{
		"DOGECoin": true, "DOGEToken": true, "$DOGE!!!": true,
		"DOGEInu": true, "BabyDOGE": true, "DOGEMoon": true,
	}
	for i := 0; i < 50; i++ {
		name := CoinName("$DOGE!!!")
		if !valid[name] {
			t.Fatalf("Unexpected name %q for trend '$DOGE!!!'", name)
		}
	}
}

func TestCoinName_NothingLeftAfterCleanup(t *testing.T) {
	SetSeed(3)
	valid := map[string]bool{
		"TrendCoin": true, "TrendToken": true, "!!!": true,
		"TrendInu": true, "BabyTrend": true, "MoonTrend": true,
	}
	for i := 0; i < 50; i++ {
		name := CoinName("!!!")
		if !valid[name] {
			t.Fatalf("Unexpected fallback name %q", name)
		}
	}
}

func TestTicker_LongName(t *testing.T) {
	if got := Ticker("BitcoinETF"); got != "BITC" {
		t.Errorf("Expected BITC, got %s", got)
	}
}

func TestTicker_ShortName(t *testing.T) {
	if got := Ticker("GM"); got != "GM" {
		t.Errorf("Expected GM, got %s", got)
	}
}

func TestTicker_SpacedShortName(t *testing.T) {
	if got := Ticker("AI 2024"); got != "AI2" {
		t.Errorf("Expected AI2, got %s", got)
	}
}

func TestConcept_Fields(t *testing.T) {
	SetSeed(4)
	c := Concept("Solana Summer", "📊 Google")

	if c.ID == "" {
		t.Error("Empty ID")
	}
	if c.Trend != "Solana Summer" {
		t.Errorf("Expected trend passthrough, got %q", c.Trend)
	}
	if c.Source != "📊 Google" {
		t.Errorf("Expected source passthrough, got %q", c.Source)
	}
	if c.Name == "" || c.Ticker == "" {
		t.Errorf("Name/ticker empty: %q / %q", c.Name, c.Ticker)
	}
	if !strings.Contains(c.Description, "Solana Summer") {
		t.Errorf("Description should mention the trend: %q", c.Description)
	}
	if _, err := time.Parse("2006-01-02 15:04:05", c.GeneratedAt); err != nil {
		t.Errorf("GeneratedAt not parseable: %v", err)
	}
}

func TestFromSnapshot_RecipeAndCap(t *testing.T) {
	SetSeed(5)
	snap := models.Snapshot{
		TwitterTrends: []string{"tw1", "tw2", "tw3"},
		YouTubeTitles: []string{"yt one video", "yt two video", "yt three"},
		GoogleTrends:  []string{"g1", "g2", "g3"},
		RedditPosts: []models.RedditPost{
			{Title: "Dogecoin is going to the moon today", Score: 900, Subreddit: "cryptocurrency"},
			{Title: "second post", Score: 100, Subreddit: "solana"},
		},
	}

	concepts := FromSnapshot(snap)
	if len(concepts) != 7 {
		t.Fatalf("Expected 7 concepts (2+2+2+1), got %d", len(concepts))
	}

	wantSources := []string{
		"🐦 Twitter", "🐦 Twitter", "📺 YouTube", "📺 YouTube",
		"📊 Google", "📊 Google", "🔥 Reddit",
	}
	for i, c := range concepts {
		if c.Source != wantSources[i] {
			t.Errorf("Concept %d: expected source %s, got %s", i, wantSources[i], c.Source)
		}
	}

	if concepts[6].Trend != "Dogecoin is going" {
		t.Errorf("Reddit concept should use the first 3 title words, got %q", concepts[6].Trend)
	}
}

func TestFromSnapshot_Empty(t *testing.T) {
	concepts := FromSnapshot(models.Snapshot{})
	if len(concepts) != 0 {
		t.Errorf("Expected no concepts from an empty snapshot, got %d", len(concepts))
	}
}

func TestSetSeed_Deterministic(t *testing.T) {
	SetSeed(42)
	var first []string
	for i := 0; i < 10; i++ {
		first = append(first, CoinName("Ethereum Merge"))
	}

	SetSeed(42)
	for i := 0; i < 10; i++ {
		if got := CoinName("Ethereum Merge"); got != first[i] {
			t.Fatalf("Run %d: expected %s, got %s", i, first[i], got)
		}
	}
}
