package datasource

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestHTTPCache_ConditionalRevalidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Write([]byte("fresh body"))
	}))
	defer srv.Close()

	cache := NewHTTPCache()

	first, err := cache.Fetch(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}
	if string(first) != "fresh body" {
		t.Fatalf("Unexpected first body: %q", first)
	}

	second, err := cache.Fetch(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("Second fetch failed: %v", err)
	}
	if string(second) != "fresh body" {
		t.Errorf("304 should serve the cached body, got %q", second)
	}

	stats := cache.Stats()
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.NotModified != 1 {
		t.Errorf("Expected 1 revalidation, got %d", stats.NotModified)
	}
	if stats.BytesSaved != len("fresh body") {
		t.Errorf("Expected %d bytes saved, got %d", len("fresh body"), stats.BytesSaved)
	}
}

func TestHTTPCache_ServesStaleOnOriginError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) > 1 {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("good data"))
	}))
	defer srv.Close()

	cache := NewHTTPCache()

	if _, err := cache.Fetch(srv.URL, srv.Client()); err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}

	body, err := cache.Fetch(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("Expected stale body instead of error: %v", err)
	}
	if string(body) != "good data" {
		t.Errorf("Expected the cached body, got %q", body)
	}
	if cache.Stats().StaleServed != 1 {
		t.Errorf("Expected 1 stale serve, got %d", cache.Stats().StaleServed)
	}
}

func TestHTTPCache_ErrorWithoutCacheFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := NewHTTPCache()
	if _, err := cache.Fetch(srv.URL, srv.Client()); err == nil {
		t.Fatal("Expected error when origin fails and nothing is cached")
	}
}

func TestExtractDomain(t *testing.T) {
	if got := extractDomain("https://www.reddit.com/r/solana/hot.json?limit=5"); got != "www.reddit.com" {
		t.Errorf("Expected www.reddit.com, got %q", got)
	}
	if got := extractDomain("://bad"); got != "" {
		t.Errorf("Expected empty domain for junk URL, got %q", got)
	}
}
