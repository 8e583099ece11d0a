package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingDaysFullWindowAtConfirmation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, RemainingDays(now, now))
}

func TestRemainingDaysCountsPartialDaysUp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	confirmed := now.Add(-29*24*time.Hour - 12*time.Hour)
	assert.Equal(t, 1, RemainingDays(confirmed, now), "half a day left rounds up to 1")

	confirmed = now.Add(-10 * 24 * time.Hour)
	assert.Equal(t, 20, RemainingDays(confirmed, now))
}

func TestRemainingDaysFloorsAtZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	confirmed := now.Add(-45 * 24 * time.Hour)
	assert.Equal(t, 0, RemainingDays(confirmed, now))
}

func TestExpiredBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	justOver := now.Add(-30*24*time.Hour - time.Second)
	assert.True(t, Expired(justOver, now), "30 days and 1 second old must be expired")

	almost := now.Add(-29*24*time.Hour - 23*time.Hour)
	assert.False(t, Expired(almost, now), "29 days 23 hours old must still be valid")

	exact := now.Add(-30 * 24 * time.Hour)
	assert.False(t, Expired(exact, now), "exactly 30 days old is still inside the window")
}

func TestExpiryAt(t *testing.T) {
	confirmed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), ExpiryAt(confirmed))
}
