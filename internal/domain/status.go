package domain

import (
	"fmt"
	"time"
)

// ContestStatus is the live state of a contest relative to some instant.
type ContestStatus string

const (
	StatusUpcoming ContestStatus = "upcoming"
	StatusRunning  ContestStatus = "running"
	StatusEnded    ContestStatus = "ended"
)

// Classify maps a contest's start and end against now. It is pure and is
// called fresh on every render; the result is never stored.
//
//	now < start          -> Upcoming, delta = start - now
//	start <= now < end   -> Running,  delta = end - now
//	now >= end           -> Ended,    delta = now - end
func Classify(start, end, now time.Time) (ContestStatus, time.Duration) {
	switch {
	case now.Before(start):
		return StatusUpcoming, start.Sub(now)
	case now.Before(end):
		return StatusRunning, end.Sub(now)
	default:
		return StatusEnded, now.Sub(end)
	}
}

// FormatDuration renders d using the two coarsest non-zero units out of
// days, hours and minutes: "2d 3h", "3h 45m", "45m". Durations under a
// minute render as "< 1m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "< 1m"
	}

	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
