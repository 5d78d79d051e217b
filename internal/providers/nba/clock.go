package nba

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Upstream clocks arrive in ISO 8601 duration form, e.g. "PT04M12.00S".
var clockPattern = regexp.MustCompile(`^PT(\d{1,2})M(\d{1,2})(?:\.\d+)?S$`)

func formatClock(raw string) string {
	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

func formatPeriod(period int) string {
	if period <= 4 {
		return fmt.Sprintf("Q%d", period)
	}
	ot := period - 4
	if ot == 1 {
		return "OT"
	}
	return fmt.Sprintf("OT%d", ot)
}

// formatTipOff renders a scheduled game's start as "7:30 PM CT".
func formatTipOff(t time.Time) string {
	return t.Format("3:04 PM") + " " + displayZone(t)
}

// displayZone collapses standard/daylight abbreviations ("CST"/"CDT") to the
// timezone's generic form ("CT").
func displayZone(t time.Time) string {
	abbrev := t.Format("MST")
	if len(abbrev) == 3 && (abbrev[1] == 'S' || abbrev[1] == 'D') && abbrev[2] == 'T' {
		return string(abbrev[0]) + "T"
	}
	return abbrev
}
