package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"github.com/teemow/gdrive-mcp/internal/google"
)

func serveHealth(t *testing.T, h *HealthChecker, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	mux := http.NewServeMux()
	h.RegisterHealthEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON from %s: %v", path, err)
	}
	return rec, body
}

func TestHealthChecker_Liveness(t *testing.T) {
	h := NewHealthChecker(nil, true)

	rec, body := serveHealth(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body["status"] != healthStatusOK {
		t.Errorf("status field = %v, want %q", body["status"], healthStatusOK)
	}
}

func TestHealthChecker_Readiness(t *testing.T) {
	sc := newTestServerContext(t, missingTokenProvider{})
	h := NewHealthChecker(sc, false)

	rec, _ := serveHealth(t, h, "/readyz")
	if rec.Code != http.StatusOK {
		t.Errorf("ready: status = %d, want %d", rec.Code, http.StatusOK)
	}

	h.SetReady(false)
	if h.IsReady() {
		t.Fatal("IsReady() = true after SetReady(false)")
	}
	rec, body := serveHealth(t, h, "/readyz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("not ready: status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	checks, _ := body["checks"].(map[string]interface{})
	if checks["ready"] != healthStatusNotReady {
		t.Errorf("ready check = %v, want %q", checks["ready"], healthStatusNotReady)
	}
}

func TestHealthChecker_ReadinessDuringShutdown(t *testing.T) {
	sc := newTestServerContext(t, missingTokenProvider{})
	h := NewHealthChecker(sc, false)
	_ = sc.Shutdown()

	rec, body := serveHealth(t, h, "/readyz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	checks, _ := body["checks"].(map[string]interface{})
	if checks["shutdown"] != healthStatusShuttingDown {
		t.Errorf("shutdown check = %v, want %q", checks["shutdown"], healthStatusShuttingDown)
	}
}

func TestHealthChecker_Detailed(t *testing.T) {
	tests := []struct {
		name            string
		tokens          google.TokenProvider
		readOnly        bool
		wantCredentials string
	}{
		{
			name:            "missing credentials",
			tokens:          missingTokenProvider{},
			readOnly:        true,
			wantCredentials: credentialsMissing,
		},
		{
			name:            "configured credentials",
			tokens:          google.NewStaticTokenProvider(&oauth2.Token{AccessToken: "test"}),
			readOnly:        false,
			wantCredentials: credentialsConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthChecker(newTestServerContext(t, tt.tokens), tt.readOnly)

			rec, body := serveHealth(t, h, "/healthz/detailed")
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if body["credentials"] != tt.wantCredentials {
				t.Errorf("credentials = %v, want %q", body["credentials"], tt.wantCredentials)
			}
			if body["readOnly"] != tt.readOnly {
				t.Errorf("readOnly = %v, want %v", body["readOnly"], tt.readOnly)
			}
			if body["uptime"] == "" {
				t.Error("expected uptime")
			}
		})
	}
}
