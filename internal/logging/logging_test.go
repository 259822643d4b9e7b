package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantJSON bool
	}{
		{name: "text", format: FormatText},
		{name: "json", format: FormatJSON, wantJSON: true},
		{name: "unknown falls back to text", format: Format("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf}).
				Info("opened configuration", "interface", "ISetupConfiguration2")

			var rec map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &rec) == nil
			if isJSON != tt.wantJSON {
				t.Fatalf("JSON = %v, want %v: %q", isJSON, tt.wantJSON, buf.String())
			}
			if isJSON && rec["interface"] != "ISetupConfiguration2" {
				t.Errorf("record = %v", rec)
			}
			if !isJSON && !strings.Contains(buf.String(), "interface=ISetupConfiguration2") {
				t.Errorf("line = %q", buf.String())
			}
		})
	}
}

func TestNew_File(t *testing.T) {
	var term, file bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &term, File: &file})

	logger.Info("below level")
	logger.Warn("component missing", "clsid", "177F0C4A")

	if strings.Contains(term.String(), "below level") || strings.Contains(file.String(), "below level") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(term.String(), "WARN  component missing") {
		t.Errorf("terminal = %q", term.String())
	}

	var rec map[string]any
	if err := json.Unmarshal(file.Bytes(), &rec); err != nil {
		t.Fatalf("file is not JSON: %v: %q", err, file.String())
	}
	if rec["msg"] != "component missing" || rec["clsid"] != "177F0C4A" {
		t.Errorf("file record = %v", rec)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	for _, level := range []slog.Level{LevelTrace, slog.LevelInfo, slog.LevelError} {
		if logger.Enabled(t.Context(), level) {
			t.Errorf("discard logger enabled at %v", level)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	for v, want := range map[int]slog.Level{
		-1: slog.LevelWarn,
		0:  slog.LevelWarn,
		1:  slog.LevelInfo,
		2:  slog.LevelDebug,
		3:  LevelTrace,
		9:  LevelTrace,
	} {
		if got := LevelFromVerbosity(v); got != want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", v, got, want)
		}
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandler(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	logger := slog.New(h).WithGroup("com").With("iface", "ISetupInstance")

	logger.Debug("vtable call")
	logger.Warn("property missing")

	if got := strings.Count(debug.String(), "com.iface=ISetupInstance"); got != 2 {
		t.Errorf("debug handler got %d records:\n%s", got, debug.String())
	}
	if strings.Contains(warn.String(), "vtable call") || !strings.Contains(warn.String(), "property missing") {
		t.Errorf("warn handler:\n%s", warn.String())
	}
	if h.Enabled(t.Context(), LevelTrace) {
		t.Error("no handler accepts trace")
	}
}

func TestMultiHandler_ErrorDoesNotStopOthers(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{slog.NewTextHandler(&bytes.Buffer{}, nil)},
		slog.NewTextHandler(&buf, nil),
	)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0)
	if err := h.Handle(t.Context(), r); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Handle() error = %v, want disk full", err)
	}
	if !strings.Contains(buf.String(), "still written") {
		t.Errorf("second handler skipped: %q", buf.String())
	}
}
