package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestFromContextReturnsFallbackWhenUnset(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck // nil ctx path is deliberate
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String(FieldRequestID, "abc"))

	ctx := WithLogger(context.Background(), scoped)
	got := FromContext(ctx, nil)
	if got != scoped {
		t.Fatal("expected scoped logger from context")
	}

	got.Info("hello")
	if !strings.Contains(buf.String(), "request_id=abc") {
		t.Fatalf("expected request_id field in output, got %q", buf.String())
	}
}

func TestErrorHelperAppendsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "boom", errTest)
	if !strings.Contains(buf.String(), "boom") || !strings.Contains(buf.String(), "test failure") {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	// Nil logger must be a no-op.
	Error(nil, "ignored", errTest)
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "test failure" }
