package utils

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountBlocked     = errors.New("account blocked")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidFieldValue  = errors.New("invalid field value")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentSettled     = errors.New("payment already settled")
	ErrPaymentRequired    = errors.New("payment required to publish")
	ErrPostQuota          = errors.New("post quota exceeded")
	ErrPostCooldown       = errors.New("post cooldown active")
	ErrAssistantFailure   = errors.New("assistant unavailable")
)

// QuotaError rejects a post when the author already published the maximum
// allowed inside the rolling window.
type QuotaError struct {
	MaxPosts   int
	WindowDays int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("limit of %d posts per %d days reached", e.MaxPosts, e.WindowDays)
}

func (e *QuotaError) Unwrap() error { return ErrPostQuota }

// CooldownError rejects a post published too soon after the author's latest
// one, reporting how many whole days remain.
type CooldownError struct {
	DaysRemaining int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("next post allowed in %d day(s)", e.DaysRemaining)
}

func (e *CooldownError) Unwrap() error { return ErrPostCooldown }
