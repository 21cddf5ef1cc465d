package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

func TestRunFeedSyncJob_UnavailableWhenFeedDisabled(t *testing.T) {
	// A disabled feed wires a nil sync service; the route stays registered
	// and must answer UNAVAILABLE, not panic or run a sync.
	handler := NewHandler(nil, nil, nil, nil, nil, logging.NewNop())
	router := NewRouter(handler, logging.NewNop(), []string{"*"}, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-feed", nil)
	req.Header.Set("X-Internal-Job-Token", "secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody == nil {
		t.Fatalf("expected error body")
	}
	if got, _ := errBody["status"].(string); got != "UNAVAILABLE" {
		t.Fatalf("expected status UNAVAILABLE, got %v", errBody["status"])
	}
}
