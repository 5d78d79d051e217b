package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-15" {
		t.Fatalf("expected 2024-01-15, got %s", got)
	}
}

func TestParseDateRejectsInvalid(t *testing.T) {
	cases := []string{"", "01/15/2024", "2024-13-40", "yesterday"}
	for _, c := range cases {
		if _, err := ParseDate(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

func TestSameDateCrossesMidnightInLocation(t *testing.T) {
	central, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 02:30 UTC on Jan 16 is still the evening of Jan 15 in Chicago.
	late := time.Date(2024, 1, 16, 2, 30, 0, 0, time.UTC)
	afternoon := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)

	if !SameDate(late, afternoon, central) {
		t.Fatalf("expected same Central date for %v and %v", late, afternoon)
	}
	if SameDate(late, afternoon, time.UTC) {
		t.Fatalf("expected different UTC dates for %v and %v", late, afternoon)
	}
}
