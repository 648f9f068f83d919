package gal

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := New(32, 32)
	ctx.BeginDrawing()
	h := ctx.BeginGroup()
	ctx.EndGroup()
	ctx.DeleteGroup(h)
	ctx.EndDrawing()

	if !strings.Contains(buf.String(), "group") {
		t.Errorf("expected group lifecycle records, got %q", buf.String())
	}
}

func TestSurfaceLogsAtInfo(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx := New(32, 32)
	ctx.BeginDrawing()
	ctx.EndDrawing()
	ctx.ResizeScreen(64, 48)
	ctx.BeginDrawing()
	ctx.EndDrawing()

	out := buf.String()
	if got := strings.Count(out, "gal: create compositor"); got != 2 {
		t.Errorf("compositor records = %d, want 2 in %q", got, out)
	}
	if !strings.Contains(out, "gal: resize surface") || !strings.Contains(out, "width=64") {
		t.Errorf("missing resize record in %q", out)
	}
	if strings.Contains(out, "level=DEBUG") {
		t.Errorf("debug records leaked at info level: %q", out)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
