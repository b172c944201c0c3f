package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cfg is the global configuration loaded at startup.
var Cfg Config

// Config holds all application configuration.
type Config struct {
	// Telegram
	TelegramToken string

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string

	// Logging
	LogLevel string

	// Refresh loop
	UpdateInterval     time.Duration
	ErrorRetryInterval time.Duration

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string

	// Data sources
	SourceGoogle    bool
	SourceReddit    bool
	SourceCoinGecko bool
	SourceYouTube   bool
	SourceTwitter   bool
	SourceNews      bool
	SourceMarkets   bool

	NitterInstances  []string
	RedditSubreddits []string

	// Rate limiter
	RateLimitPerMinute int
	RateLimitBurst     int

	// Status server
	StatusServerEnabled bool
	StatusAddr          string
}

// Load reads .env (if present) and populates Cfg from environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables")
	}

	Cfg = Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: envOr("SENTRY_ENVIRONMENT", "production"),
		SentryRelease:     envOr("SENTRY_RELEASE", "trendmint@1.0.0"),

		LogLevel: strings.ToLower(envOr("LOG_LEVEL", "info")),

		UpdateInterval:     envDuration("UPDATE_INTERVAL", 30*time.Minute),
		ErrorRetryInterval: envDuration("ERROR_RETRY_INTERVAL", 5*time.Minute),

		HTTPTimeout: envDuration("HTTP_TIMEOUT", 10*time.Second),
		UserAgent:   envOr("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),

		SourceGoogle:    envBool("SOURCE_GOOGLE", true),
		SourceReddit:    envBool("SOURCE_REDDIT", true),
		SourceCoinGecko: envBool("SOURCE_COINGECKO", true),
		SourceYouTube:   envBool("SOURCE_YOUTUBE", true),
		SourceTwitter:   envBool("SOURCE_TWITTER", true),
		SourceNews:      envBool("SOURCE_NEWS", true),
		SourceMarkets:   envBool("SOURCE_MARKETS", true),

		NitterInstances: envList("NITTER_INSTANCES",
			"https://nitter.net,https://nitter.privacydev.net,https://nitter.poast.org"),
		RedditSubreddits: envList("REDDIT_SUBREDDITS", "cryptocurrency,solana,CryptoMoonShots"),

		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 20),
		RateLimitBurst:     envInt("RATE_LIMIT_BURST", 5),

		StatusServerEnabled: envBool("STATUS_SERVER_ENABLED", false),
		StatusAddr:          envOr("STATUS_ADDR", ":8090"),
	}

	log.Printf("config: loaded (interval=%s, sources=%d, status_server=%v)",
		Cfg.UpdateInterval, countEnabledSources(), Cfg.StatusServerEnabled)
}

func countEnabledSources() int {
	n := 0
	for _, on := range []bool{
		Cfg.SourceGoogle, Cfg.SourceReddit, Cfg.SourceCoinGecko,
		Cfg.SourceYouTube, Cfg.SourceTwitter, Cfg.SourceNews, Cfg.SourceMarkets,
	} {
		if on {
			n++
		}
	}
	return n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key, fallback string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
