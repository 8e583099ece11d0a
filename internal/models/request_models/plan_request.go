package request_models

type SavePlanRequest struct {
	Name         string  `json:"name" binding:"required,max=60"`
	Description  *string `json:"description,omitempty"`
	PriceMinor   int64   `json:"price_minor" binding:"required,gt=0"`
	Currency     string  `json:"currency,omitempty"`
	DurationDays int32   `json:"duration_days,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
