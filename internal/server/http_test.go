package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

func TestNewHTTPServer_RequiresMCPServer(t *testing.T) {
	if _, err := NewHTTPServer(nil, false); err == nil {
		t.Error("NewHTTPServer(nil) expected error")
	}
}

func TestHTTPServer_Handler(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("gdrive-mcp-test", "0.0.0", mcpserver.WithToolCapabilities(true))

	srv, err := NewHTTPServer(mcpSrv, true)
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}
	srv.SetHealthChecker(NewHealthChecker(nil, true))
	srv.SetMetrics(createTestProvider(t).Metrics())

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /healthz status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	resp, err = http.Get(ts.URL + "/unknown")
	if err != nil {
		t.Fatalf("GET /unknown error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /unknown status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestHTTPServer_ShutdownMarksNotReady(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("gdrive-mcp-test", "0.0.0")
	srv, err := NewHTTPServer(mcpSrv, false)
	if err != nil {
		t.Fatalf("NewHTTPServer() error = %v", err)
	}
	h := NewHealthChecker(nil, false)
	srv.SetHealthChecker(h)

	// Shutdown without Start must not fail
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if h.IsReady() {
		t.Error("expected health checker to report not ready after shutdown")
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	sr.WriteHeader(http.StatusTeapot)
	sr.Flush()

	if sr.status != http.StatusTeapot || rec.Code != http.StatusTeapot {
		t.Errorf("status = %d/%d, want %d", sr.status, rec.Code, http.StatusTeapot)
	}
	if !rec.Flushed {
		t.Error("expected Flush to reach the underlying writer")
	}
}
