package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/health", "")

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("expected healthy, got %s", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Fatalf("expected a timestamp")
	}
}
