package response_models

type CheckoutResponse struct {
	ProviderTxnID string `json:"provider_txn_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	PlanID        string `json:"plan_id"`
	Status        string `json:"status"`
}

type PaymentConfirmedResponse struct {
	PaymentStatus string `json:"payment_status"`
	ExpiresAt     int64  `json:"expires_at"`
	RemainingDays int    `json:"remaining_days"`
}
