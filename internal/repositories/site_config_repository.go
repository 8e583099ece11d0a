package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anuncia/internal/models/db_models"
)

type SiteConfigRepository interface {
	// Get returns the singleton record, or nil when it was never saved.
	Get(ctx context.Context) (*db_models.SiteConfig, error)
	// Save overwrites the singleton wholesale, creating it on first save.
	Save(ctx context.Context, cfg *db_models.SiteConfig) error
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) Get(ctx context.Context) (*db_models.SiteConfig, error) {
	var cfg db_models.SiteConfig
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *siteConfigRepository) Save(ctx context.Context, cfg *db_models.SiteConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.SiteConfig
		err := tx.Order("created_at ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(cfg).Error
		}
		if err != nil {
			return err
		}
		cfg.ID = existing.ID
		cfg.CreatedAt = existing.CreatedAt
		return tx.Save(cfg).Error
	})
}
