package scorefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/resilience"
)

func TestFetchPlayerScores_DecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/42/scores" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer feed-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"playerId":42,"points":95,"recordedAt":"2026-03-03T20:15:00Z"},
			{"playerId":42,"points":120,"recordedAt":"2026-03-02T18:30:00Z"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "feed-token",
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})

	scores, err := client.FetchPlayerScores(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Points != 120 || scores[1].Points != 95 {
		t.Fatalf("expected scores sorted by recorded time, got %+v", scores)
	}
}

func TestFetchPlayerScores_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"playerId":7,"points":64,"recordedAt":"2026-03-02T21:00:00Z"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	scores, err := client.FetchPlayerScores(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", got)
	}
}

func TestFetchPlayerScores_NonRetryableStatusFailsFast(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	if _, err := client.FetchPlayerScores(context.Background(), 7); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected single upstream call, got %d", got)
	}
}

func TestDoJSON_BuildsRequestURLWithQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/42/scores" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("since"); got != "2026-03-01T00:00:00Z" {
			t.Errorf("unexpected since query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})

	var envelope scoresEnvelope
	query := map[string]string{"since": "2026-03-01T00:00:00Z"}
	if err := client.doJSON(context.Background(), "/players/42/scores", query, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Fatalf("expected empty data, got %d entries", len(envelope.Data))
	}
}

func TestFetchPlayerScores_RejectsInvalidPlayerID(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	if _, err := client.FetchPlayerScores(context.Background(), 0); err == nil {
		t.Fatalf("expected error for non-positive player id")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	got := sanitizeSensitiveText("dial failed Authorization: Bearer feed-token", "feed-token")
	if got != "dial failed Authorization: Bearer REDACTED" {
		t.Fatalf("unexpected sanitized text %q", got)
	}
}

func TestCircuitBreakerRejectsWhenOpen(t *testing.T) {
	client := NewClient(ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	_, firstErr := client.FetchPlayerScores(context.Background(), 42)
	if firstErr == nil {
		t.Fatalf("expected first call to fail")
	}

	_, secondErr := client.FetchPlayerScores(context.Background(), 42)
	if secondErr == nil {
		t.Fatalf("expected breaker to reject second call")
	}
}
