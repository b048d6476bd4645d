package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level", debug: false, wantDebug: false},
		{name: "debug level", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.debug)

			logger.Debug("debug message")
			logger.Info("info message")

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug output present = %v, want %v: %s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "info message") {
				t.Errorf("info message missing: %s", out)
			}
		})
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)

	WithService(WithOperation(WithTool(logger, "gdrive_search"), "search"), "drive").Info("done")

	out := buf.String()
	for _, want := range []string{"tool=gdrive_search", "operation=search", "service=drive"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		name      string
		attr      slog.Attr
		wantKey   string
		wantValue string
	}{
		{name: "operation", attr: Operation("upload"), wantKey: KeyOperation, wantValue: "upload"},
		{name: "service", attr: Service("sheets"), wantKey: KeyService, wantValue: "sheets"},
		{name: "tool", attr: Tool("gsheets_read"), wantKey: KeyTool, wantValue: "gsheets_read"},
		{name: "shared drive", attr: SharedDrive("Finance"), wantKey: KeySharedDrive, wantValue: "Finance"},
		{name: "resource", attr: Resource("1AbC"), wantKey: KeyResource, wantValue: "1AbC"},
		{name: "duration", attr: Duration(1500 * time.Millisecond), wantKey: KeyDuration, wantValue: "1.5s"},
		{name: "status", attr: Status(StatusSuccess), wantKey: KeyStatus, wantValue: StatusSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.String() != tt.wantValue {
				t.Errorf("value = %q, want %q", tt.attr.Value.String(), tt.wantValue)
			}
		})
	}
}

func TestErr(t *testing.T) {
	attr := Err(errors.New("test error"))
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Empty Group has empty key
	attr = Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}

	var buf bytes.Buffer
	NewLogger(&buf, false).Info("ok", Err(nil))
	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("Err(nil) should be omitted: %s", buf.String())
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "", want: "<empty>"},
		{token: "ya29.a0AfH6SMB", want: "[token:14 chars]"},
	}

	for _, tt := range tests {
		got := SanitizeToken(tt.token)
		if got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
		if tt.token != "" && strings.Contains(got, tt.token) {
			t.Errorf("SanitizeToken leaked token content: %q", got)
		}
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
