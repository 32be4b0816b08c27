package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(config CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(config))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestCORS_AllowAll(t *testing.T) {
	r := corsRouter(CORSConfig{AllowAllOrigins: true})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "false" {
		t.Errorf("expected credentials false with wildcard origin, got %q", got)
	}
}

func TestCORS_AllowedList(t *testing.T) {
	config := CORSConfig{AllowedOrigins: []string{"https://app.example.com"}}
	r := corsRouter(config)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("expected origin echoed back, got %q", got)
	}

	// Disallowed origin gets no CORS headers but the request still runs.
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for disallowed origin, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := corsRouter(CORSConfig{AllowAllOrigins: true})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
}

func TestResolveOrigin(t *testing.T) {
	tests := []struct {
		name            string
		origin          string
		config          CORSConfig
		wantOrigin      string
		wantCredentials string
		wantOK          bool
	}{
		{
			name:            "wildcard grant disables credentials",
			origin:          "https://a.com",
			config:          CORSConfig{AllowAllOrigins: true},
			wantOrigin:      "*",
			wantCredentials: "false",
			wantOK:          true,
		},
		{
			name:            "listed origin echoed with credentials",
			origin:          "https://a.com",
			config:          CORSConfig{AllowedOrigins: []string{"https://a.com"}},
			wantOrigin:      "https://a.com",
			wantCredentials: "true",
			wantOK:          true,
		},
		{
			name:   "unlisted origin rejected",
			origin: "https://b.com",
			config: CORSConfig{AllowedOrigins: []string{"https://a.com"}},
			wantOK: false,
		},
		{
			name:            "empty allow list echoes the caller",
			origin:          "https://c.com",
			config:          CORSConfig{},
			wantOrigin:      "https://c.com",
			wantCredentials: "true",
			wantOK:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOrigin, gotCredentials, ok := resolveOrigin(tt.origin, tt.config)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if gotOrigin != tt.wantOrigin || gotCredentials != tt.wantCredentials {
				t.Errorf("expected (%q, %q), got (%q, %q)",
					tt.wantOrigin, tt.wantCredentials, gotOrigin, gotCredentials)
			}
		})
	}
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		config   CORSConfig
		expected bool
	}{
		{name: "allow all", origin: "https://any.com", config: CORSConfig{AllowAllOrigins: true}, expected: true},
		{name: "exact match", origin: "https://a.com", config: CORSConfig{AllowedOrigins: []string{"https://a.com"}}, expected: true},
		{name: "case insensitive", origin: "https://A.com", config: CORSConfig{AllowedOrigins: []string{"https://a.com"}}, expected: true},
		{name: "wildcard entry", origin: "https://b.com", config: CORSConfig{AllowedOrigins: []string{"*"}}, expected: true},
		{name: "no match", origin: "https://c.com", config: CORSConfig{AllowedOrigins: []string{"https://a.com"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOriginAllowed(tt.origin, tt.config); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
