package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// AdEmbedding is the retrieval index for the chat assistant: one embedding
// vector per published post, searched by cosine distance.
type AdEmbedding struct {
	PostID     string `gorm:"primaryKey;column:post_id"`
	Title      string
	Body       string
	Category   string
	AuthorName string
	Keywords   pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}
