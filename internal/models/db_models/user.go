package db_models

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleModerator  Role = "MODERATOR"
	RoleAdvertiser Role = "ADVERTISER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleAdvertiser:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentConfirmed     PaymentStatus = "CONFIRMED"
	PaymentAwaiting      PaymentStatus = "AWAITING"
	PaymentNotApplicable PaymentStatus = "NOT_APPLICABLE"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentConfirmed, PaymentAwaiting, PaymentNotApplicable:
		return true
	}
	return false
}

// User is an account on the portal. Admins carry PaymentNotApplicable and
// bypass posting limits; advertisers start as PaymentAwaiting until a
// payment is confirmed.
type User struct {
	BaseModel
	DisplayName   string
	Email         string `gorm:"uniqueIndex"`
	PasswordHash  string
	Role          Role          `gorm:"size:16;default:'ADVERTISER';index"`
	Profession    string
	PaymentStatus PaymentStatus `gorm:"size:16;default:'AWAITING';index"`

	// PlanID is a weak reference: a dangling id is tolerated and rendered
	// as "no plan" by the API layer.
	PlanID *uuid.UUID `gorm:"index"`

	// Unix seconds. Both are nil until the first confirmed payment and are
	// cleared again when the subscription window lapses.
	PaymentConfirmedAt *int64
	ExpiresAt          *int64

	Blocked       bool `gorm:"default:false"`
	UsedFreeTrial bool `gorm:"default:false"`

	Posts []Post `gorm:"foreignKey:AuthorID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublish reports whether the user's posts are publicly visible.
func (u *User) CanPublish() bool {
	return u.IsAdmin() || u.PaymentStatus == PaymentConfirmed
}
