package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"trendmint/internal/models"

	"github.com/google/uuid"
	"github.com/mrz1836/go-sanitize"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// SetSeed makes the generator deterministic. Tests only.
func SetSeed(seed int64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewSource(seed))
}

func pick(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

var descriptionTemplates = []string{
	"The official memecoin of %s! 🚀",
	"Riding the %s wave to the moon! 🌙",
	"%s holders unite! Community-driven token.",
	"Inspired by %s. Fair launch, no presale!",
	"The %s revolution starts here! 💎🙌",
}

// CoinName mints a token name from a trend term by slotting its leading
// words into one of the fixed naming patterns.
func CoinName(trend string) string {
	clean := sanitize.AlphaNumeric(trend, true)
	words := strings.Fields(clean)

	patterns := make([]string, 6)
	if len(words) == 0 {
		patterns = []string{"TrendCoin", "TrendToken", trend, "TrendInu", "BabyTrend", "MoonTrend"}
	} else {
		patterns[0] = words[0] + "Coin"
		patterns[1] = words[0] + "Token"
		if len(words) >= 2 {
			patterns[2] = words[0] + words[1]
		} else {
			patterns[2] = trend
		}
		patterns[3] = words[0] + "Inu"
		patterns[4] = "Baby" + words[0]
		patterns[5] = words[0] + "Moon"
	}

	return patterns[pick(len(patterns))]
}

// Ticker derives a ticker symbol from a token name: the leading capitals
// when there are enough of them, otherwise the name's first characters.
func Ticker(name string) string {
	var caps []rune
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			caps = append(caps, r)
		}
	}
	if len(caps) >= 3 {
		if len(caps) > 4 {
			caps = caps[:4]
		}
		return string(caps)
	}

	runes := []rune(name)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return strings.ReplaceAll(strings.ToUpper(string(runes)), " ", "")
}

// Concept assembles a full coin concept for a trend term.
func Concept(trend, source string) models.CoinConcept {
	name := CoinName(trend)
	return models.CoinConcept{
		ID:          uuid.NewString(),
		Trend:       trend,
		Source:      source,
		Name:        name,
		Ticker:      Ticker(name),
		Description: fmt.Sprintf(descriptionTemplates[pick(len(descriptionTemplates))], trend),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
}

// FromSnapshot applies the house recipe to a snapshot: a couple of trends
// from each of the chatty sources plus the top forum post, capped at 7.
func FromSnapshot(snap models.Snapshot) []models.CoinConcept {
	var concepts []models.CoinConcept

	for i, t := range snap.TwitterTrends {
		if i >= 2 {
			break
		}
		concepts = append(concepts, Concept(t, "🐦 Twitter"))
	}
	for i, t := range snap.YouTubeTitles {
		if i >= 2 {
			break
		}
		concepts = append(concepts, Concept(t, "📺 YouTube"))
	}
	for i, t := range snap.GoogleTrends {
		if i >= 2 {
			break
		}
		concepts = append(concepts, Concept(t, "📊 Google"))
	}
	if len(snap.RedditPosts) > 0 {
		words := strings.Fields(snap.RedditPosts[0].Title)
		if len(words) > 3 {
			words = words[:3]
		}
		concepts = append(concepts, Concept(strings.Join(words, " "), "🔥 Reddit"))
	}

	if len(concepts) > 7 {
		concepts = concepts[:7]
	}
	return concepts
}
