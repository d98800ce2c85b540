package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufferedLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON log record: %v", err)
	}
	return rec
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(ctx, "msg") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(ctx, "msg") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "msg") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "msg") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedLogger()
			tt.log(l)
			rec := lastRecord(t, buf)
			if rec["level"] != tt.level {
				t.Errorf("expected level %s, got %v", tt.level, rec["level"])
			}
		})
	}
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	l, buf := newBufferedLogger()

	child := l.With("module", "rest")
	child.Info(context.Background(), "hello")

	rec := lastRecord(t, buf)
	if rec["module"] != "rest" {
		t.Errorf("expected module attr to propagate, got %v", rec["module"])
	}
}
