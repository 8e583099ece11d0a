// Package rules holds the portal's publishing business rules: the 30-day
// subscription window and the posting-frequency limiter. The functions are
// pure over explicit timestamps so callers decide when "now" is.
package rules

import (
	"time"

	"anuncia/pkg/utils"
)

const (
	// SubscriptionDays is the validity window granted by a confirmed payment.
	SubscriptionDays = 30
)

// ExpiryAt returns the end of the validity window for a confirmation time.
func ExpiryAt(confirmedAt time.Time) time.Time {
	return confirmedAt.Add(SubscriptionDays * utils.Day)
}

// RemainingDays reports whole days left in the window, rounded up, floored
// at 0. A payment confirmed right now reports the full 30.
func RemainingDays(confirmedAt time.Time, now time.Time) int {
	return utils.CeilDaysUntil(ExpiryAt(confirmedAt), now)
}

// Expired reports whether the window has lapsed. The boundary is exclusive:
// a confirmation exactly 30 days old is still valid, one second older is not.
func Expired(confirmedAt time.Time, now time.Time) bool {
	return now.After(ExpiryAt(confirmedAt))
}
