package db_models

// Plan is a paid publishing tier. Created and edited only through the admin
// API; users hold a weak reference to it.
type Plan struct {
	BaseModel
	Name         string
	Description  *string
	PriceMinor   int64  // 4990 = R$49,90
	Currency     string `gorm:"size:3;default:'BRL'"`
	DurationDays int32  `gorm:"default:30"`
	IsActive     bool   `gorm:"default:true"`
}
