package requestutil

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("expected valid id kept, got %q", got)
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	for _, in := range []string{"", "has space", "bad/slash", "toolong" + string(make([]byte, 80))} {
		got := SanitizeRequestID(in)
		if got == in {
			t.Fatalf("expected replacement for %q", in)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected generated uuid, got %q: %v", got, err)
		}
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Fatalf("expected unique ids, got %q twice", a)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected forwarded ip, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}
}
