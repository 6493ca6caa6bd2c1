package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	secured := SecurityHeaders(handler)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	secured.ServeHTTP(w, req)

	tests := []struct {
		header   string
		expected string
		contains bool
	}{
		{"X-Frame-Options", "DENY", false},
		{"X-Content-Type-Options", "nosniff", false},
		{"Referrer-Policy", "strict-origin-when-cross-origin", false},
		{"Content-Security-Policy", "default-src", true},
		{"Content-Security-Policy", "connect-src 'self' ws: wss:", true},
		{"Permissions-Policy", "camera=()", true},
	}

	for _, tc := range tests {
		got := w.Header().Get(tc.header)
		if tc.contains {
			if !strings.Contains(got, tc.expected) {
				t.Errorf("Expected %s header to contain %q, got %q", tc.header, tc.expected, got)
			}
		} else {
			if got != tc.expected {
				t.Errorf("Expected %s header to be %q, got %q", tc.header, tc.expected, got)
			}
		}
	}
}
