package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform is the canonical identifier for a competitive-programming site.
// External platform strings are translated to this set exactly once, at
// ingestion in the clist client; everything downstream works with Platform.
type Platform string

const (
	PlatformCodeforces Platform = "codeforces"
	PlatformCodeChef   Platform = "codechef"
	PlatformAtCoder    Platform = "atcoder"
	PlatformLeetCode   Platform = "leetcode"
)

// Platforms lists every supported platform in a fixed order. The refresh
// engine fetches each one independently.
var Platforms = []Platform{
	PlatformCodeforces,
	PlatformCodeChef,
	PlatformAtCoder,
	PlatformLeetCode,
}

// PlatformNames maps canonical platforms to their display names.
var PlatformNames = map[Platform]string{
	PlatformCodeforces: "Codeforces",
	PlatformCodeChef:   "CodeChef",
	PlatformAtCoder:    "AtCoder",
	PlatformLeetCode:   "LeetCode",
}

// PlatformEmojis maps canonical platforms to the emoji used in announcements.
var PlatformEmojis = map[Platform]string{
	PlatformCodeforces: "🔴",
	PlatformCodeChef:   "🟤",
	PlatformAtCoder:    "🟠",
	PlatformLeetCode:   "🟡",
}

func (p Platform) DisplayName() string {
	if name, ok := PlatformNames[p]; ok {
		return name
	}
	return string(p)
}

func (p Platform) Emoji() string {
	if emoji, ok := PlatformEmojis[p]; ok {
		return emoji
	}
	return "⚪"
}

// ParsePlatform converts user input to a canonical platform, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := PlatformNames[p]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
}

const (
	// ReferenceTimezone is the fixed timezone for user-facing display and
	// for computing "today" in windows and announcements.
	ReferenceTimezone = "Asia/Kolkata"

	// CacheWindowDays is how far ahead the refresh engine fetches.
	CacheWindowDays = 30

	// MaxQueryDays bounds the days argument of contest queries.
	MaxQueryDays = 30

	// MaxQueryLimit bounds the limit argument of contest queries. Discord
	// caps embeds at 25 fields, so more can never be rendered anyway.
	MaxQueryLimit = 25

	// DefaultAnnouncementTime is the announcement time-of-day a guild gets
	// before an admin configures one.
	DefaultAnnouncementTime = "09:00"
)

var referenceLocation = mustLoadLocation(ReferenceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load reference timezone %s: %v", name, err))
	}
	return loc
}

// ReferenceLocation returns the reference timezone location (IST).
func ReferenceLocation() *time.Location {
	return referenceLocation
}

// StartOfDay truncates t to midnight in the reference timezone, offset by
// the given number of days.
func StartOfDay(t time.Time, offsetDays int) time.Time {
	local := t.In(referenceLocation)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, referenceLocation)
	return day.AddDate(0, 0, offsetDays)
}

// LocalDate formats t as a YYYY-MM-DD date in the reference timezone. Used
// for the per-guild last-announced marker.
func LocalDate(t time.Time) string {
	return t.In(referenceLocation).Format("2006-01-02")
}
