package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	ts := time.Date(2024, 3, 1, 14, 3, 27, 114e6, time.UTC)
	r := slog.NewRecord(ts, slog.LevelDebug, "enumerated instance", 0)
	r.AddAttrs(slog.String("id", "a1b2c3d4"), slog.Int("count", 3))
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := "14:03:27.114 DEBUG enumerated instance id=a1b2c3d4 count=3\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestHandler_Format(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		attrs []any
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "INFO  msg\n"},
		{name: "error", level: slog.LevelError, want: "ERROR msg\n"},
		{name: "trace", level: LevelTrace, attrs: []any{"slot", "Next"}, want: "TRACE msg slot=Next\n"},
		{name: "quoted", level: slog.LevelWarn, attrs: []any{"path", `C:\Program Files`}, want: `WARN  msg path="C:\\Program Files"` + "\n"},
		{name: "empty string", level: slog.LevelInfo, attrs: []any{"locale", ""}, want: `INFO  msg locale=""` + "\n"},
		{name: "group", level: slog.LevelInfo, attrs: []any{slog.Group("instance", "id", "abc")}, want: "INFO  msg instance.id=abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})

			r := slog.NewRecord(time.Time{}, tt.level, "msg", 0)
			r.Add(tt.attrs...)
			if err := h.Handle(t.Context(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	for level, want := range map[slog.Level]bool{
		LevelTrace:      false,
		slog.LevelInfo:  false,
		slog.LevelWarn:  true,
		slog.LevelError: true,
	} {
		if got := h.Enabled(t.Context(), level); got != want {
			t.Errorf("Enabled(%v) = %v, want %v", level, got, want)
		}
	}

	if NewHandler(&bytes.Buffer{}, nil).Enabled(t.Context(), slog.LevelDebug) {
		t.Error("nil options should default to info")
	}
}

func TestHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).
		With("op", "enum").
		WithGroup("com").
		With("iface", "ISetupConfiguration")

	logger.Info("call", "hr", "0x80040154", slog.Group("instance", "id", "abc123"))

	line := buf.String()
	for _, want := range []string{" op=enum", " com.iface=ISetupConfiguration", " com.hr=0x80040154", " com.instance.id=abc123"} {
		if !strings.Contains(line, want) {
			t.Errorf("line missing %q: %q", want, line)
		}
	}
	if strings.Contains(line, "com.op") {
		t.Errorf("attribute added before the group was qualified: %q", line)
	}
}
