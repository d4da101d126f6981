package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	commonhttp "github.com/mzhuravlev/feedback-board/internal/common/http"
)

func TestHealthHandler(t *testing.T) {
	handler := commonhttp.HealthHandler("feedback-board")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "feedback-board" {
		t.Errorf("unexpected health payload %v", body)
	}

	denied := httptest.NewRecorder()
	handler(denied, httptest.NewRequest("POST", "/health", nil))
	if denied.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST, got %d", denied.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{"x-real-ip wins", "203.0.113.7", "198.51.100.1", "192.0.2.1:1234", "203.0.113.7"},
		{"first forwarded hop", "", "198.51.100.1, 10.0.0.1", "192.0.2.1:1234", "198.51.100.1"},
		{"remote addr fallback", "", "", "192.0.2.1:1234", "192.0.2.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.realIP != "" {
				r.Header.Set("X-Real-IP", tc.realIP)
			}
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			if got := commonhttp.GetClientIP(r); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
