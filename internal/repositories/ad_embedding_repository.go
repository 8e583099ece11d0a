package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anuncia/internal/models/db_models"
)

type AdEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.AdEmbedding) error
	DeleteByPostID(ctx context.Context, postID string) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.AdEmbedding, error)
}

type adEmbeddingRepository struct {
	db *gorm.DB
}

func NewAdEmbeddingRepository(db *gorm.DB) AdEmbeddingRepository {
	return &adEmbeddingRepository{db: db}
}

func (r *adEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.AdEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		UpdateAll: true,
	}).Create(embedding).Error
}

func (r *adEmbeddingRepository) DeleteByPostID(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.AdEmbedding{}, "post_id = ?", postID).Error
}

func (r *adEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.AdEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var results []db_models.AdEmbedding

	query := `
        SELECT *
        FROM ad_embeddings
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	if err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
