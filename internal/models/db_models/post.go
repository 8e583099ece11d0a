package db_models

import (
	"github.com/google/uuid"
)

// Post is a published ad. Author name and profession are denormalized so the
// public feed renders without joining users.
type Post struct {
	BaseModel
	AuthorID         uuid.UUID `gorm:"index"`
	AuthorName       string
	AuthorProfession string
	Category         string `gorm:"index"`
	Title            string
	Body             string
	Whatsapp         string
	Phone            string
	ImageURL         string

	Author User `gorm:"foreignKey:AuthorID"`
}
