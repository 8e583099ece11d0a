package response_models

import (
	"anuncia/internal/models/db_models"
)

type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	PriceMinor   int64   `json:"price_minor"`
	Currency     string  `json:"currency"`
	DurationDays int32   `json:"duration_days"`
	IsActive     bool    `json:"is_active"`
}

func PlanFromModel(p *db_models.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		PriceMinor:   p.PriceMinor,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
		IsActive:     p.IsActive,
	}
}

func PlansFromModels(plans []db_models.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, PlanFromModel(&plans[i]))
	}
	return out
}
