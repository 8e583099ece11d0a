package response_models

import (
	"anuncia/internal/models/db_models"
)

type AccountLoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

// AccountResponse is the stable external shape of a user record; the mapping
// from db_models isolates backend column naming from API consumers.
type AccountResponse struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Profession    string `json:"profession"`
	PaymentStatus string `json:"payment_status"`
	PlanID        string `json:"plan_id,omitempty"`

	PaymentConfirmedAt int64 `json:"payment_confirmed_at,omitempty"`
	ExpiresAt          int64 `json:"expires_at,omitempty"`
	// RemainingDays is computed at read time, never stored.
	RemainingDays int  `json:"remaining_days"`
	Blocked       bool `json:"blocked"`
	UsedFreeTrial bool `json:"used_free_trial"`
	CreatedAt     int64 `json:"created_at"`
}

func AccountFromUser(u *db_models.User, remainingDays int) AccountResponse {
	resp := AccountResponse{
		ID:            u.ID.String(),
		DisplayName:   u.DisplayName,
		Email:         u.Email,
		Role:          string(u.Role),
		Profession:    u.Profession,
		PaymentStatus: string(u.PaymentStatus),
		RemainingDays: remainingDays,
		Blocked:       u.Blocked,
		UsedFreeTrial: u.UsedFreeTrial,
		CreatedAt:     u.CreatedAt,
	}
	if u.PlanID != nil {
		resp.PlanID = u.PlanID.String()
	}
	if u.PaymentConfirmedAt != nil {
		resp.PaymentConfirmedAt = *u.PaymentConfirmedAt
	}
	if u.ExpiresAt != nil {
		resp.ExpiresAt = *u.ExpiresAt
	}
	return resp
}
