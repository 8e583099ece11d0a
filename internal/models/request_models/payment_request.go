package request_models

type CreateCheckoutRequest struct {
	PlanID string `json:"plan_id" binding:"required,uuid4"`
}

type ConfirmPaymentRequest struct {
	ProviderTxnID string `json:"provider_txn_id" binding:"required"`
}
