package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type SiteServiceInterface interface {
	GetConfig(ctx context.Context) (*response_models.SiteConfigResponse, error)
	SaveConfig(ctx context.Context, request request_models.SaveSiteConfigRequest) (*response_models.SiteConfigResponse, error)
	GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	AddCategory(ctx context.Context, request request_models.SaveCategoryRequest) (*response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

type SiteService struct {
	site *store.SiteStore
}

func NewSiteService(site *store.SiteStore) SiteServiceInterface {
	return &SiteService{site: site}
}

func (s *SiteService) GetConfig(ctx context.Context) (*response_models.SiteConfigResponse, error) {
	cfg, err := s.site.FetchConfig(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.SiteConfigFromModel(cfg)
	return &resp, nil
}

func (s *SiteService) SaveConfig(ctx context.Context, request request_models.SaveSiteConfigRequest) (*response_models.SiteConfigResponse, error) {
	links, err := json.Marshal(request.ContactLinks)
	if err != nil {
		links = []byte("{}")
	}

	cfg := &db_models.SiteConfig{
		BrandName:    request.BrandName,
		LogoURL:      request.LogoURL,
		HeroTitle:    request.HeroTitle,
		HeroSubtitle: request.HeroSubtitle,
		HeroImageURL: request.HeroImageURL,
		ContactLinks: links,
	}

	receipt := s.site.SaveConfig(ctx, cfg)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("site config saved locally only: %v", receipt.Remote)
	}

	resp := response_models.SiteConfigFromModel(cfg)
	return &resp, nil
}

func (s *SiteService) GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.site.FetchCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.CategoriesFromModels(categories), nil
}

func (s *SiteService) AddCategory(ctx context.Context, request request_models.SaveCategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := s.site.FindCategoryByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &db_models.Category{Name: request.Name}
	receipt := s.site.InsertCategory(ctx, category)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *SiteService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	receipt := s.site.DeleteCategory(ctx, categoryID)
	if !receipt.Local {
		return utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("category %s deleted locally only: %v", categoryID, receipt.Remote)
	}
	return nil
}
