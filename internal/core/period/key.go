package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Key formats t as the canonical bucket key for granularity g:
// daily YYYY-MM-DD, monthly YYYY-MM, yearly YYYY. Zero-padded components
// keep lexicographic key order equal to chronological order.
func Key(t time.Time, g Granularity) string {
	switch g {
	case Daily:
		return t.Format("2006-01-02")
	case Monthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

var (
	dailyKeyPattern   = regexp.MustCompile(`(\d{4})\s*-\s*(\d{1,2})\s*-\s*(\d{1,2})`)
	monthlyKeyPattern = regexp.MustCompile(`(\d{4})\s*-\s*(\d{1,2})`)
	yearlyKeyPattern  = regexp.MustCompile(`\d{4}`)
)

// Normalize canonicalizes a raw period value coming back from any supported
// SQL dialect. Different back-ends pad, space and case their date formatting
// output differently; two raws naming the same bucket must normalize to
// byte-identical keys or the gap filler will file their rows under separate
// buckets.
//
// Tolerated and corrected: surrounding whitespace, spaced separators
// ("2024 - 3"), missing zero padding, a year embedded in a longer string.
// Unrecoverable input returns the trimmed original unchanged. The row then
// misses its expected bucket and the series shows zero for that period,
// which is preferable to failing the whole report over one dirty key.
func Normalize(raw string, g Granularity) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	switch g {
	case Daily:
		m := dailyKeyPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return trimmed
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if !validDay(year, month, day) {
			return trimmed
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	case Monthly:
		m := monthlyKeyPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return trimmed
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return trimmed
		}
		return fmt.Sprintf("%04d-%02d", year, month)

	default:
		if m := yearlyKeyPattern.FindString(trimmed); m != "" {
			return m
		}
		return trimmed
	}
}

// validDay round-trips through time.Date, which normalizes out-of-range
// components (2024-02-31 becomes 2024-03-02).
func validDay(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
