// Package clocktime converts third-party spreadsheet clock strings (e.g. "5:00a")
// into 24-hour "HH:MM" form and answers interval questions over those strings.
package clocktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches a 12-hour clock string such as "5:00a" or "12:30p".
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})([ap])$`)

// stripper removes encoding artifacts (non-breaking spaces, stray symbols) that
// spreadsheet exports commonly leak into time cells.
var stripper = regexp.MustCompile(`[^0-9apm:]`)

// rangeSeparator is the separator used by the roster exports between clock-in
// and clock-out, e.g. "5:00a - 2:00p".
const rangeSeparator = " - "

// To24Hour converts a 12-hour clock string like "5:00a" to "05:00".
// Standard 12-hour rules apply: "12:xxa" maps to "00:xx", "12:xxp" stays "12:xx",
// any other "p" hour gets +12.
func To24Hour(clock string) (string, error) {
	cleaned := stripper.ReplaceAllString(strings.ToLower(strings.TrimSpace(clock)), "")
	// Tolerate a trailing "m" ("5:00am" vs "5:00a").
	cleaned = strings.TrimSuffix(cleaned, "m")

	m := clockPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", fmt.Errorf("unparsable clock string %q", clock)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("clock string %q has hour out of range", clock)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return "", fmt.Errorf("clock string %q has minute out of range", clock)
	}

	switch m[3] {
	case "a":
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour != 12 {
			hour += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// SplitRange splits a raw shift-time cell like "5:00a - 2:00p" into its two
// clock strings. The clock strings are not yet converted or validated.
func SplitRange(raw string) (string, string, error) {
	parts := strings.Split(raw, rangeSeparator)
	if len(parts) != 2 {
		// Some exports drop the surrounding spaces.
		parts = strings.Split(raw, "-")
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("shift time %q is not a range", raw)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// ParseRange converts a raw shift-time cell into a pair of 24-hour "HH:MM" strings.
func ParseRange(raw string) (string, string, error) {
	rawStart, rawEnd, err := SplitRange(raw)
	if err != nil {
		return "", "", err
	}
	start, err := To24Hour(rawStart)
	if err != nil {
		return "", "", err
	}
	end, err := To24Hour(rawEnd)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

// Minutes converts a 24-hour "HH:MM" string to minutes since midnight.
func Minutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid 24-hour time %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid 24-hour time %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid 24-hour time %q", hhmm)
	}
	return hour*60 + minute, nil
}

// IsValid reports whether hhmm is a well-formed 24-hour "HH:MM" string.
func IsValid(hhmm string) bool {
	_, err := Minutes(hhmm)
	return err == nil
}

// Overlaps reports whether the interval [aStart, aEnd) has any non-empty
// intersection with [bStart, bEnd). All arguments are 24-hour "HH:MM" strings;
// malformed input reports no overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, err := Minutes(aStart)
	if err != nil {
		return false
	}
	ae, err := Minutes(aEnd)
	if err != nil {
		return false
	}
	bs, err := Minutes(bStart)
	if err != nil {
		return false
	}
	be, err := Minutes(bEnd)
	if err != nil {
		return false
	}
	return !(ae <= bs || as >= be)
}
