package report

import (
	"strings"
	"testing"
	"time"

	"trendmint/internal/models"
)

func TestTransliterate_DropsEmojiAndMapsQuotes(t *testing.T) {
	got := transliterate("Bitcoin 🚀 hits “new highs” — again")
	if got != `Bitcoin hits "new highs" - again` {
		t.Errorf("Unexpected transliteration: %q", got)
	}
}

func TestTransliterate_NonLatinStripped(t *testing.T) {
	got := transliterate("ビットコイン Bitcoin 比特币")
	if got != "Bitcoin" {
		t.Errorf("Expected only the latin word to survive, got %q", got)
	}
}

func TestClip(t *testing.T) {
	if got := clip("abcdefghij", 8); got != "abcde..." {
		t.Errorf("Expected abcde..., got %q", got)
	}
	if got := clip("short", 8); got != "short" {
		t.Errorf("Short strings should pass through, got %q", got)
	}
}

func TestBuild_FullSnapshot(t *testing.T) {
	snap := models.Snapshot{
		GoogleTrends:  []string{"Bitcoin ETF", "Solar Eclipse"},
		TwitterTrends: []string{"#Solana"},
		YouTubeTitles: []string{"Market analysis for the week ahead"},
		RedditPosts:   []models.RedditPost{{Title: "DOGE rally", Score: 4200, Subreddit: "cryptocurrency"}},
		TrendingCoins: []models.TrendingCoin{{Name: "Pepe", Symbol: "pepe", MarketCapRank: 42}},
		NewsHeadlines: []models.Headline{{Title: "Exchange lists new token"}},
		MarketQuotes:  []models.MarketQuote{{Label: "Gold", Symbol: "GC=F", Price: 2412.3}},
		LastUpdate:    time.Now(),
		UpdateCount:   5,
	}

	data, err := Build(snap)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Errorf("Output does not look like a PDF: %q", data[:8])
	}
	if len(data) < 2000 {
		t.Errorf("PDF suspiciously small: %d bytes", len(data))
	}
}

func TestBuild_EmptySnapshot(t *testing.T) {
	data, err := Build(models.Snapshot{})
	if err != nil {
		t.Fatalf("Build failed on empty snapshot: %v", err)
	}
	if len(data) == 0 {
		t.Error("Empty snapshot should still produce a cover page")
	}
}
