package telegram

import (
	"strings"

	"trendmint/internal/generator"
	"trendmint/internal/logger"
	"trendmint/internal/report"
	"trendmint/internal/trends"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) dispatch(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "help":
		b.reply(chatID, welcomeText)
	case "trends":
		b.cmdTrends(chatID)
	case "twitter":
		b.cmdTwitter(chatID)
	case "youtube":
		b.cmdYouTube(chatID)
	case "reddit":
		b.cmdReddit(chatID)
	case "coins":
		b.cmdCoins(chatID)
	case "news":
		b.cmdNews(chatID)
	case "all":
		b.cmdAll(chatID)
	case "generate":
		b.cmdGenerate(chatID)
	case "markets":
		b.cmdMarkets(chatID)
	case "report":
		b.cmdReport(chatID)
	case "status":
		b.cmdStatus(chatID)
	case "refresh":
		b.cmdRefresh(chatID)
	case "auto":
		b.cmdAuto(chatID, msg.From.ID, msg.CommandArguments())
	default:
		b.reply(chatID, "Unknown command. Try /help")
	}
}

func (b *Bot) cmdTrends(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.GoogleTrends) == 0 {
		b.reply(chatID, "⏳ Fetching trends for the first time...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.GoogleTrends) == 0 {
		b.reply(chatID, "❌ No trends available. Try /refresh")
		return
	}
	b.reply(chatID, formatTrends(snap.GoogleTrends, snap.LastUpdate))
}

func (b *Bot) cmdTwitter(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.TwitterTrends) == 0 {
		b.reply(chatID, "⏳ Fetching Twitter trends...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.TwitterTrends) == 0 {
		b.reply(chatID, "❌ Twitter trends unavailable. Try /refresh in a moment.")
		return
	}
	b.reply(chatID, formatTwitter(snap.TwitterTrends))
}

func (b *Bot) cmdYouTube(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.YouTubeTitles) == 0 {
		b.reply(chatID, "⏳ Fetching YouTube trends...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.YouTubeTitles) == 0 {
		b.reply(chatID, "❌ YouTube trends unavailable.")
		return
	}
	b.reply(chatID, formatYouTube(snap.YouTubeTitles))
}

func (b *Bot) cmdReddit(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.RedditPosts) == 0 {
		b.reply(chatID, "⏳ Fetching Reddit trends...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.RedditPosts) == 0 {
		b.reply(chatID, "❌ No Reddit trends available.")
		return
	}
	b.reply(chatID, formatReddit(snap.RedditPosts))
}

func (b *Bot) cmdCoins(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.TrendingCoins) == 0 {
		b.reply(chatID, "⏳ Fetching trending coins...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.TrendingCoins) == 0 {
		b.reply(chatID, "❌ No trending coins available.")
		return
	}
	b.reply(chatID, formatCoins(snap.TrendingCoins))
}

func (b *Bot) cmdNews(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.NewsHeadlines) == 0 {
		b.reply(chatID, "⏳ Fetching crypto news...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.NewsHeadlines) == 0 {
		b.reply(chatID, "❌ News unavailable.")
		return
	}
	b.reply(chatID, formatNews(snap.NewsHeadlines))
}

func (b *Bot) cmdMarkets(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.MarketQuotes) == 0 {
		b.reply(chatID, "⏳ Fetching market data...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	if len(snap.MarketQuotes) == 0 {
		b.reply(chatID, "❌ Market data unavailable.")
		return
	}
	b.reply(chatID, formatMarkets(snap.MarketQuotes))
}

func (b *Bot) cmdAll(chatID int64) {
	if trends.Snapshot().Empty() {
		b.reply(chatID, "⏳ Fetching ALL trends...")
		trends.RefreshAll()
	}
	b.reply(chatID, formatAll(trends.Snapshot()))
}

func (b *Bot) cmdGenerate(chatID int64) {
	snap := trends.Snapshot()
	if len(snap.GoogleTrends) == 0 && len(snap.RedditPosts) == 0 &&
		len(snap.YouTubeTitles) == 0 && len(snap.TwitterTrends) == 0 {
		b.reply(chatID, "⏳ Fetching trends first...")
		trends.RefreshAll()
		snap = trends.Snapshot()
	}

	b.reply(chatID, "🎨 Generating coin ideas from ALL sources...")

	concepts := generator.FromSnapshot(snap)
	if len(concepts) == 0 {
		b.reply(chatID, "❌ No trends available to generate ideas.")
		return
	}
	b.reply(chatID, formatConcepts(concepts))
}

func (b *Bot) cmdReport(chatID int64) {
	trends.EnsureLoaded()

	b.reply(chatID, "📄 Generating trend report...")

	data, err := report.Build(trends.Snapshot())
	if err != nil {
		logger.Error("telegram: report build failed", map[string]interface{}{"error": err.Error()})
		b.reply(chatID, "❌ Could not generate the report.")
		return
	}

	if err := b.sendDocument(chatID, "trend-report.pdf", data); err != nil {
		logger.Warn("telegram: report send failed", map[string]interface{}{
			"chat": chatID, "error": err.Error(),
		})
		b.reply(chatID, "❌ Could not send the report.")
	}
}

func (b *Bot) cmdStatus(chatID int64) {
	b.reply(chatID, formatStatus(trends.Snapshot(), trends.SourceStatuses()))
}

func (b *Bot) cmdRefresh(chatID int64) {
	b.reply(chatID, "🔄 Refreshing all trend data...")
	trends.RefreshAll()
	b.reply(chatID, "✅ Data refreshed! Use /trends or /generate")
}

func (b *Bot) cmdAuto(chatID, userID int64, args string) {
	arg := strings.ToLower(strings.TrimSpace(args))
	if arg != "on" && arg != "off" {
		b.reply(chatID, "Usage: /auto `on` or /auto `off`")
		return
	}

	on := arg == "on"
	b.prefs.SetAutoNotify(userID, on)

	if on {
		b.reply(chatID, "🔔 Auto-notifications *ENABLED*!\nI'll notify you when new trending topics appear.")
	} else {
		b.reply(chatID, "🔕 Auto-notifications *DISABLED*.")
	}
}
