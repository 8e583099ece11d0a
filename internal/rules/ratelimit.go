package rules

import (
	"math"
	"time"

	"anuncia/pkg/utils"
)

const (
	// MaxPostsPerWindow posts within PostWindowDays, and at least
	// PostSpacingDays between consecutive posts.
	MaxPostsPerWindow = 4
	PostWindowDays    = 30
	PostSpacingDays   = 7
)

// CheckPostingLimit decides whether an author may publish now, given the
// creation times of their existing posts. The quota check wins over the
// cooldown check; either failure aborts the post before anything is written.
// Admins never reach this function.
func CheckPostingLimit(existing []time.Time, now time.Time) error {
	recent := 0
	var latest time.Time
	for _, createdAt := range existing {
		// Inclusive boundary: a post exactly 30 days old still counts.
		if utils.DaysSince(createdAt, now) <= PostWindowDays {
			recent++
		}
		if createdAt.After(latest) {
			latest = createdAt
		}
	}

	if recent >= MaxPostsPerWindow {
		return &utils.QuotaError{MaxPosts: MaxPostsPerWindow, WindowDays: PostWindowDays}
	}

	if !latest.IsZero() {
		sinceLast := utils.DaysSince(latest, now)
		// Exactly PostSpacingDays is allowed.
		if sinceLast < PostSpacingDays {
			remaining := int(math.Ceil(PostSpacingDays - sinceLast))
			return &utils.CooldownError{DaysRemaining: remaining}
		}
	}

	return nil
}
