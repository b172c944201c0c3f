package telegram

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"trendmint/internal/handlers"
	"trendmint/internal/models"
)

const welcomeText = "🤖 *Trend Monitor & Coin Generator Bot*\n\n" +
	"I monitor trending topics from FREE sources and generate memecoin ideas!\n\n" +
	"*Commands:*\n" +
	"/trends - Show Google/general trends\n" +
	"/twitter - Show Twitter/X trending topics\n" +
	"/youtube - Show YouTube trending videos\n" +
	"/reddit - Show trending Reddit posts\n" +
	"/coins - Show trending coins (CoinGecko)\n" +
	"/news - Show latest crypto news\n" +
	"/markets - Show a market snapshot\n" +
	"/all - Show ALL trends from all sources\n" +
	"/generate - Generate coin ideas from trends\n" +
	"/report - Get a PDF trend report\n" +
	"/auto `on/off` - Auto-notify for new trends\n" +
	"/refresh - Manually refresh trend data\n" +
	"/status - Show bot status\n" +
	"/help - Show this message\n\n" +
	"*Data Sources (100% FREE):*\n" +
	"📊 Google Trends\n" +
	"🐦 Twitter/X (via Nitter)\n" +
	"📺 YouTube Trending\n" +
	"🔥 Reddit Crypto Subs\n" +
	"💎 CoinGecko Trending\n" +
	"📰 Crypto News (CoinTelegraph)\n" +
	"💹 Markets (spot + futures)\n\n" +
	"💡 *Tip:* I update all sources every 30 minutes!"

// truncate cuts a string to at most n runes. Callers append their own
// ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func formatTrends(items []string, lastUpdate time.Time) string {
	var sb strings.Builder
	sb.WriteString("📊 *Google Trending Searches*\n")
	sb.WriteString(fmt.Sprintf("🕐 Updated: %s\n\n", lastUpdate.Format("15:04:05")))

	for i, trend := range items {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, trend))
	}

	sb.WriteString("\n💡 Use /generate to create coin ideas!")
	return sb.String()
}

func formatTwitter(items []string) string {
	var sb strings.Builder
	sb.WriteString("🐦 *Trending on Twitter/X*\n\n")
	for i, trend := range items {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, trend))
	}
	return sb.String()
}

func formatYouTube(items []string) string {
	var sb strings.Builder
	sb.WriteString("📺 *Trending on YouTube*\n\n")
	for i, title := range items {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
	}
	return sb.String()
}

func formatReddit(posts []models.RedditPost) string {
	var sb strings.Builder
	sb.WriteString("🔥 *Trending on Crypto Reddit*\n\n")
	for i, post := range posts {
		if i >= 5 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. *%s...*\n", i+1, truncate(post.Title, 60)))
		sb.WriteString(fmt.Sprintf("   ⬆️ %d | r/%s\n\n", post.Score, post.Subreddit))
	}
	return sb.String()
}

func formatCoins(coins []models.TrendingCoin) string {
	var sb strings.Builder
	sb.WriteString("💎 *Trending Coins (CoinGecko)*\n\n")
	for i, coin := range coins {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* ($%s)\n", i+1, coin.Name, strings.ToUpper(coin.Symbol)))
		sb.WriteString(fmt.Sprintf("   📊 Rank: #%s\n\n", rankLabel(coin.MarketCapRank)))
	}
	return sb.String()
}

func rankLabel(rank int) string {
	if rank <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", rank)
}

func formatNews(headlines []models.Headline) string {
	var sb strings.Builder
	sb.WriteString("📰 *Latest Crypto News*\n\n")
	for i, h := range headlines {
		if i >= 8 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, h.Title))
	}
	return sb.String()
}

func formatAll(snap models.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("🌐 *ALL TRENDING DATA*\n\n")

	if len(snap.TwitterTrends) > 0 {
		n := len(snap.TwitterTrends)
		if n > 3 {
			n = 3
		}
		sb.WriteString(fmt.Sprintf("🐦 *Twitter:* %s\n\n", strings.Join(snap.TwitterTrends[:n], ", ")))
	}
	if len(snap.YouTubeTitles) > 0 {
		sb.WriteString(fmt.Sprintf("📺 *YouTube:* %s...\n\n", truncate(snap.YouTubeTitles[0], 50)))
	}
	if len(snap.GoogleTrends) > 0 {
		n := len(snap.GoogleTrends)
		if n > 3 {
			n = 3
		}
		sb.WriteString(fmt.Sprintf("📊 *Google:* %s\n\n", strings.Join(snap.GoogleTrends[:n], ", ")))
	}
	if len(snap.RedditPosts) > 0 {
		top := snap.RedditPosts[0]
		sb.WriteString(fmt.Sprintf("🔥 *Reddit:* %s... (%d↑)\n\n", truncate(top.Title, 50), top.Score))
	}
	if len(snap.TrendingCoins) > 0 {
		n := len(snap.TrendingCoins)
		if n > 3 {
			n = 3
		}
		names := make([]string, 0, n)
		for _, c := range snap.TrendingCoins[:n] {
			names = append(names, c.Name)
		}
		sb.WriteString(fmt.Sprintf("💎 *Coins:* %s\n\n", strings.Join(names, ", ")))
	}
	if len(snap.NewsHeadlines) > 0 {
		sb.WriteString(fmt.Sprintf("📰 *News:* %s...\n\n", truncate(snap.NewsHeadlines[0].Title, 60)))
	}

	sb.WriteString("Use specific commands for more details!")
	return sb.String()
}

func formatConcepts(concepts []models.CoinConcept) string {
	var sb strings.Builder
	sb.WriteString("🚀 *Generated Coin Concepts*\n\n")

	for i, c := range concepts {
		if i >= 7 {
			break
		}
		sb.WriteString(fmt.Sprintf("*%d. %s* ($%s)\n", i+1, c.Name, c.Ticker))
		sb.WriteString(fmt.Sprintf("📝 %s\n", c.Description))
		sb.WriteString(fmt.Sprintf("📊 Based on: %s...\n", truncate(c.Trend, 40)))
		sb.WriteString(fmt.Sprintf("🔍 Source: %s\n\n", c.Source))
	}

	sb.WriteString("⚠️ *Next Steps:*\n")
	sb.WriteString("1. Review the concept\n")
	sb.WriteString("2. Create logo (Canva/AI)\n")
	sb.WriteString("3. Deploy on pump.fun\n")
	sb.WriteString("4. Market on Twitter/Telegram")
	return sb.String()
}

func formatMarkets(quotes []models.MarketQuote) string {
	var sb strings.Builder
	sb.WriteString("💹 *Market Snapshot*\n\n")
	for _, q := range quotes {
		sb.WriteString(fmt.Sprintf("• %s: $%s\n", q.Label, commaSep(q.Price)))
	}
	return sb.String()
}

// commaSep renders a price with thousands separators, two decimals.
func commaSep(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}

	out := sb.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func formatStatus(snap models.Snapshot, statuses map[string]models.SourceStatus) string {
	var sb strings.Builder
	sb.WriteString("🤖 *Bot Status*\n\n")
	sb.WriteString(fmt.Sprintf("⏱ Uptime: %s\n", handlers.UptimeHuman()))

	if snap.LastUpdate.IsZero() {
		sb.WriteString("🕐 Last update: never\n")
	} else {
		age := time.Since(snap.LastUpdate).Round(time.Second)
		sb.WriteString(fmt.Sprintf("🕐 Last update: %s (%s ago)\n", snap.LastUpdate.Format("15:04:05"), age))
	}

	sb.WriteString(fmt.Sprintf("🔄 Update cycles: %d\n", snap.UpdateCount))
	sb.WriteString(fmt.Sprintf("📦 Cached items: %d\n\n", snap.TotalItems()))

	sb.WriteString("*Sources:*\n")
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		sb.WriteString("(no fetches yet)\n")
	}
	for _, name := range names {
		st := statuses[name]
		if st.LastError != "" {
			sb.WriteString(fmt.Sprintf("❌ %s: %s\n", name, st.LastError))
		} else {
			sb.WriteString(fmt.Sprintf("✅ %s: %d items\n", name, st.ItemCount))
		}
	}

	return sb.String()
}

func formatFreshTrends(fresh []string) string {
	var sb strings.Builder
	sb.WriteString("🔥 *New Trending Topics Detected!*\n\n")
	for i, trend := range fresh {
		if i >= 5 {
			break
		}
		sb.WriteString(fmt.Sprintf("• %s\n", trend))
	}
	sb.WriteString("\nUse /generate to create coin ideas!")
	return sb.String()
}
