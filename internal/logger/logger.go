// Package logger writes the bot's JSON-lines log stream to stdout. The
// refresh loop logs one entry per source per cycle, so per-request noise
// (cache revalidations, pacing waits) sits below the default level.
package logger

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"trendmint/internal/config"
)

type logEntry struct {
	Timestamp string                 `json:"ts"`
	Level     string                 `json:"level"`
	Message   string                 `json:"msg"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

var output = log.New(os.Stdout, "", 0)

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

func minRank() int {
	if r, ok := levelRank[config.Cfg.LogLevel]; ok {
		return r
	}
	return levelRank["info"]
}

func emit(level, msg string, extra map[string]interface{}) {
	if levelRank[level] < minRank() {
		return
	}
	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
		Extra:     extra,
	}
	data, _ := json.Marshal(entry)
	output.Println(string(data))
}

func Debug(msg string, extra map[string]interface{}) {
	emit("debug", msg, extra)
}

func Info(msg string, extra map[string]interface{}) {
	emit("info", msg, extra)
}

func Warn(msg string, extra map[string]interface{}) {
	emit("warn", msg, extra)
}

func Error(msg string, extra map[string]interface{}) {
	emit("error", msg, extra)
}
