package store

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

// SiteStore covers the config singleton and the category lookup list; both
// are small and change only through admin saves.
type SiteStore struct {
	configRepo   repositories.SiteConfigRepository
	categoryRepo repositories.CategoryRepository
	snap         cache.SnapshotStore
}

func NewSiteStore(configRepo repositories.SiteConfigRepository, categoryRepo repositories.CategoryRepository, snap cache.SnapshotStore) *SiteStore {
	return &SiteStore{configRepo: configRepo, categoryRepo: categoryRepo, snap: snap}
}

func (s *SiteStore) FetchConfig(ctx context.Context) (*db_models.SiteConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		log.Printf("config fetch falling back to snapshot: %v", err)
		var cached db_models.SiteConfig
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyConfig, &cached); cacheErr == nil && ok {
			return &cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if cfg == nil {
		// Never saved: serve defaults without caching them.
		return &db_models.SiteConfig{BrandName: "Classificados"}, nil
	}
	if err := s.snap.Set(ctx, cache.KeyConfig, cfg); err != nil {
		log.Printf("config snapshot refresh failed: %v", err)
	}
	return cfg, nil
}

func (s *SiteStore) SaveConfig(ctx context.Context, cfg *db_models.SiteConfig) WriteReceipt {
	receipt := WriteReceipt{Local: true}

	if err := s.snap.Set(ctx, cache.KeyConfig, cfg); err != nil {
		receipt.Local = false
		log.Printf("config snapshot write failed: %v", err)
	}
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		receipt.Remote = err
		log.Printf("config remote write failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *SiteStore) FetchCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		log.Printf("category fetch falling back to snapshot: %v", err)
		var cached []db_models.Category
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyCategories, &cached); cacheErr == nil && ok {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if err := s.snap.Set(ctx, cache.KeyCategories, categories); err != nil {
		log.Printf("category snapshot refresh failed: %v", err)
	}
	return categories, nil
}

func (s *SiteStore) FindCategoryByName(ctx context.Context, name string) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		var cached []db_models.Category
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyCategories, &cached); cacheErr == nil && ok {
			for i := range cached {
				if strings.EqualFold(cached[i].Name, name) {
					return &cached[i], nil
				}
			}
			return nil, nil
		}
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *SiteStore) InsertCategory(ctx context.Context, category *db_models.Category) WriteReceipt {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	receipt := WriteReceipt{Local: true}

	var cached []db_models.Category
	_, _ = s.snap.Get(ctx, cache.KeyCategories, &cached)
	cached = append(cached, *category)
	if err := s.snap.Set(ctx, cache.KeyCategories, cached); err != nil {
		receipt.Local = false
		log.Printf("category snapshot write failed: %v", err)
	}

	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		receipt.Remote = err
		log.Printf("category remote write failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *SiteStore) DeleteCategory(ctx context.Context, id uuid.UUID) WriteReceipt {
	receipt := WriteReceipt{Local: true}

	var cached []db_models.Category
	if ok, _ := s.snap.Get(ctx, cache.KeyCategories, &cached); ok {
		kept := cached[:0]
		for i := range cached {
			if cached[i].ID != id {
				kept = append(kept, cached[i])
			}
		}
		if err := s.snap.Set(ctx, cache.KeyCategories, kept); err != nil {
			receipt.Local = false
			log.Printf("category snapshot delete failed: %v", err)
		}
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		receipt.Remote = err
		log.Printf("category remote delete failed, local snapshot kept: %v", err)
	}
	return receipt
}
