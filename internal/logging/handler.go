package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// TimeFormat is the timestamp layout of [Handler].
const TimeFormat = "15:04:05.000"

// palette holds the colors of a terminal handler. The zero value prints
// plain text.
type palette struct {
	time, key          *color.Color
	trace, debug, info *color.Color
	warn, err          *color.Color
}

func newPalette() palette {
	return palette{
		time:  color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// Handler is a slog.Handler writing one line per record:
//
//	14:03:27.114 DEBUG enumerated instance id=a1b2c3d4 com.iface=ISetupInstance
//
// Groups become dotted key prefixes. Colors are used only when the writer
// is a color-capable terminal.
type Handler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	colors palette

	// preformatted holds attributes added with WithAttrs.
	preformatted []byte
	prefix       string
}

// NewHandler creates a Handler. opts may be nil; only opts.Level is used.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{level: slog.LevelInfo, out: out, mu: &sync.Mutex{}}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	if !r.Time.IsZero() {
		buf.WriteString(paint(h.colors.time, r.Time.Format(TimeFormat)))
		buf.WriteByte(' ')
	}
	name, c := h.levelStyle(r.Level)
	fmt.Fprintf(&buf, "%-5s %s", paint(c, name), r.Message)

	buf.Write(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) levelStyle(l slog.Level) (string, *color.Color) {
	switch {
	case l >= slog.LevelError:
		return l.String(), h.colors.err
	case l >= slog.LevelWarn:
		return l.String(), h.colors.warn
	case l >= slog.LevelInfo:
		return l.String(), h.colors.info
	case l > LevelTrace:
		return l.String(), h.colors.debug
	default:
		return "TRACE", h.colors.trace
	}
}

func (h *Handler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := prefix + a.Key
	if a.Value.Kind() == slog.KindGroup {
		// An inline group has an empty key.
		if a.Key != "" {
			key += "."
		}
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, key, ga)
		}
		return
	}
	fmt.Fprintf(buf, " %s=%s", paint(h.colors.key, key), formatValue(a.Value))
}

// formatValue quotes strings that would otherwise break key=value parsing.
func formatValue(v slog.Value) string {
	s := v.String()
	if v.Kind() == slog.KindString && (s == "" || strings.ContainsAny(s, " \t\n\"=")) {
		return strconv.Quote(s)
	}
	return s
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.Write(h.preformatted)
	for _, a := range attrs {
		h.writeAttr(&buf, h.prefix, a)
	}
	clone := *h
	clone.preformatted = buf.Bytes()
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}
