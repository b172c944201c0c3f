package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(3*time.Hour + 2*time.Minute + 5*time.Second); got != "3h 2m 5s" {
		t.Errorf("Expected 3h 2m 5s, got %s", got)
	}
	if got := formatDuration(2*time.Minute + 5*time.Second); got != "2m 5s" {
		t.Errorf("Expected 2m 5s, got %s", got)
	}
	if got := formatDuration(9 * time.Second); got != "9s" {
		t.Errorf("Expected 9s, got %s", got)
	}
}

func TestCountCommand_Aggregates(t *testing.T) {
	CountCommand("trends")
	CountCommand("trends")
	CountCommand("generate")

	total, byName := commandCounts()
	if total < 3 {
		t.Errorf("Expected at least 3 commands counted, got %d", total)
	}
	if byName["trends"] < 2 {
		t.Errorf("Expected at least 2 /trends invocations, got %d", byName["trends"])
	}
	if byName["generate"] < 1 {
		t.Errorf("Expected at least 1 /generate invocation, got %d", byName["generate"])
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HealthHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var result map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", result["status"])
	}
}

func TestStatusHandler(t *testing.T) {
	CountCommand("status")

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	StatusHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", result["status"])
	}
	if _, ok := result["uptime_seconds"]; !ok {
		t.Error("Missing uptime_seconds")
	}
	if _, ok := result["trends"]; !ok {
		t.Error("Missing trends block")
	}
	if result["commands_served"].(float64) < 1 {
		t.Error("Command counter should be visible in status")
	}
}
