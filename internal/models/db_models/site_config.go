package db_models

import (
	"gorm.io/datatypes"
)

// SiteConfig is a singleton record holding the portal branding. Admin saves
// overwrite it wholesale; there is no field-level merge.
type SiteConfig struct {
	BaseModel
	BrandName    string
	LogoURL      string
	HeroTitle    string
	HeroSubtitle string
	HeroImageURL string

	// Contact/social links keyed by channel ("whatsapp", "instagram", ...).
	ContactLinks datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
