package utils

import (
	"math"
	"time"
)

const Day = 24 * time.Hour

func NowUnixSeconds() int64 { return time.Now().Unix() }

// CeilDaysUntil returns the number of whole days from now until t, rounded
// up, floored at 0. A deadline exactly n days away reports n.
func CeilDaysUntil(t time.Time, now time.Time) int {
	remaining := t.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// DaysSince returns the fractional number of days elapsed since t.
func DaysSince(t time.Time, now time.Time) float64 {
	return now.Sub(t).Hours() / 24
}

func FromUnixSeconds(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}
