package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "set")
	if got := envOrDefault("CFG_TEST_STR", "fallback"); got != "set" {
		t.Fatalf("expected set, got %s", got)
	}
	if got := envOrDefault("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_DUR", "45s")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Minute); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}
	t.Setenv("CFG_TEST_DUR", "0s")
	if got := durationEnvOrDefault("CFG_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for non-positive, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "14")
	if got := intEnvOrDefault("CFG_TEST_INT", 7); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	t.Setenv("CFG_TEST_INT", "-2")
	if got := intEnvOrDefault("CFG_TEST_INT", 7); got != 7 {
		t.Fatalf("expected fallback for negative, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
	}
	for raw, want := range cases {
		t.Setenv("CFG_TEST_BOOL", raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", !want); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}

	t.Setenv("CFG_TEST_BOOL", "maybe")
	if got := boolEnvOrDefault("CFG_TEST_BOOL", true); got != true {
		t.Fatal("expected fallback for unparseable value")
	}
}
