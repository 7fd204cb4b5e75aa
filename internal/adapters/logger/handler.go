package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/devx/internal/ui/output"
	"go.trai.ch/devx/internal/ui/style"
)

// detailIndent lines attribute details up under the text after the level icon.
const detailIndent = "    "

// PrettyHandler is a slog.Handler for a terminal. The message goes on the first
// line, prefixed by a level icon; attributes follow as indented "key: value"
// lines so error metadata such as the tool or variable stays readable.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := h.levelStyle(r.Level)

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}

	var b strings.Builder
	b.WriteString(h.out.String(msg).Foreground(color).String())
	b.WriteByte('\n')

	details := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		details = append(details, h.detail(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		details = append(details, h.detail(attr))
		return true
	})
	for _, d := range details {
		b.WriteString(h.out.String(detailIndent + d).Faint().String())
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *PrettyHandler) levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, h.out.Color(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, h.out.Color(string(style.Yellow))
	default:
		return "", h.out.Color(string(style.Muted))
	}
}

func (h *PrettyHandler) detail(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return fmt.Sprintf("%s: %s", key, attr.Value.Resolve().String())
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}
