package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemsBack/internal/models"
)

func TestHealth(t *testing.T) {
	h := &SystemHandler{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestFavicon(t *testing.T) {
	h := &SystemHandler{}

	rec := httptest.NewRecorder()
	h.Favicon(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRobots(t *testing.T) {
	h := &SystemHandler{}

	rec := httptest.NewRecorder()
	h.Robots(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Disallow: /") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
