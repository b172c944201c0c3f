package telegram

import (
	"fmt"

	"trendmint/internal/config"
	"trendmint/internal/handlers"
	"trendmint/internal/logger"
	sentryutil "trendmint/internal/sentry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the Telegram surface: it polls for updates, dispatches commands
// and pushes trend notifications.
type Bot struct {
	api     *tgbotapi.BotAPI
	prefs   *Prefs
	limiter *RateLimiter
}

// NewBot authorizes against the Bot API and assembles the bot.
func NewBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	logger.Info("telegram: authorized", map[string]interface{}{"account": api.Self.UserName})

	return &Bot{
		api:     api,
		prefs:   NewPrefs(),
		limiter: NewRateLimiter(config.Cfg.RateLimitPerMinute, config.Cfg.RateLimitBurst),
	}, nil
}

var menuCommands = []tgbotapi.BotCommand{
	{Command: "trends", Description: "📊 Google/general trends"},
	{Command: "twitter", Description: "🐦 Twitter trending"},
	{Command: "youtube", Description: "📺 YouTube trending"},
	{Command: "all", Description: "🌐 All sources at once"},
	{Command: "generate", Description: "🎨 Generate coin ideas"},
	{Command: "reddit", Description: "🔥 Reddit posts"},
	{Command: "coins", Description: "💎 Trending coins"},
	{Command: "news", Description: "📰 Crypto news"},
	{Command: "markets", Description: "💹 Market snapshot"},
	{Command: "report", Description: "📄 PDF trend report"},
	{Command: "status", Description: "🤖 Bot status"},
	{Command: "refresh", Description: "🔄 Refresh data"},
}

// Start registers the command menu and consumes updates until the update
// channel closes. It blocks.
func (b *Bot) Start() {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(menuCommands...)); err != nil {
		logger.Warn("telegram: set commands failed", map[string]interface{}{"error": err.Error()})
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	logger.Info("telegram: polling for updates", nil)

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("update handler panic: %v", r)
			logger.Error("telegram: panic recovered", map[string]interface{}{"error": err.Error()})
			sentryutil.CaptureError(err, map[string]string{"component": "telegram"})
		}
	}()

	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	msg := update.Message
	if msg.From != nil && !b.limiter.Allow(msg.From.ID) {
		b.reply(msg.Chat.ID, "⏳ Too many requests, slow down.")
		return
	}

	cmd := msg.Command()
	logger.Info("telegram: command", map[string]interface{}{
		"command": cmd, "chat": msg.Chat.ID,
	})
	handlers.CountCommand(cmd)

	b.dispatch(msg)
}

// reply sends a Markdown message, logging rather than propagating failures:
// a lost reply should never take the update loop down.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		logger.Warn("telegram: send failed", map[string]interface{}{
			"chat": chatID, "error": err.Error(),
		})
	}
}

// send is reply with the error surfaced, for callers that track delivery.
func (b *Bot) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	_, err := b.api.Send(doc)
	return err
}
