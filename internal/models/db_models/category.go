package db_models

// Category is a flat lookup list for post classification.
type Category struct {
	BaseModel
	Name string `gorm:"unique;not null"`
}
