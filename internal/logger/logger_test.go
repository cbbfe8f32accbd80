package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("parsed geometry", "fields", 8)

	out := buf.String()
	if !strings.Contains(out, "parsed geometry") {
		t.Fatalf("missing message in output: %s", out)
	}
	if !strings.Contains(out, `"fields":8`) {
		t.Fatalf("missing attribute in output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelWarn)
	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() > 0 {
		t.Fatalf("expected no output below warn, got: %s", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn message missing: %s", buf.String())
	}
}

func TestSetupFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Setup(&buf, "debug", "json")
	log.Debug("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected JSON output, got: %s", buf.String())
	}

	buf.Reset()
	log = Setup(&buf, "info", "text")
	log.Info("world")
	if !strings.Contains(buf.String(), "msg=world") {
		t.Fatalf("expected text output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		"info":     slog.LevelInfo,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"verbose":  slog.LevelInfo,
		"":         slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo).With("file", "b2fgmtry")
	log.Info("read")
	if !strings.Contains(buf.String(), "file=b2fgmtry") {
		t.Fatalf("With attribute missing: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Text(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("via context")
	if !strings.Contains(buf.String(), "via context") {
		t.Fatalf("context logger not used: %s", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must fall back to a default logger")
	}
}
