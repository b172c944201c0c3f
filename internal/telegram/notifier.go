package telegram

import (
	"trendmint/internal/logger"
	"trendmint/internal/trends"
)

// NotifyFresh pushes newly appeared trend terms to every opted-in user.
// Wired as the refresh-complete hook from main.
func (b *Bot) NotifyFresh(res trends.RefreshResult) {
	if len(res.Fresh) == 0 {
		return
	}

	users := b.prefs.AutoNotifyUsers()
	if len(users) == 0 {
		return
	}

	text := formatFreshTrends(res.Fresh)
	sent := 0
	for _, userID := range users {
		if err := b.send(userID, text); err != nil {
			logger.Warn("telegram: notify failed", map[string]interface{}{
				"user": userID, "error": err.Error(),
			})
			continue
		}
		sent++
	}

	logger.Info("telegram: fresh trends pushed", map[string]interface{}{
		"fresh": len(res.Fresh), "notified": sent,
	})
}
