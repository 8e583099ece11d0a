package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

// Transaction is a payment intent for a plan. Created pending at checkout and
// marked paid by the confirmation callback; ProviderTxnID keeps the callback
// idempotent.
type Transaction struct {
	BaseModel
	UserID      uuid.UUID         `gorm:"index"`
	PlanID      uuid.UUID         `gorm:"index"`
	AmountMinor int64
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"size:16;index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"uniqueIndex"`

	// Unix seconds.
	PaidAt *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
	Plan Plan `gorm:"foreignKey:PlanID"`
}
