package response_models

import (
	"encoding/json"

	"anuncia/internal/models/db_models"
)

type SiteConfigResponse struct {
	BrandName    string            `json:"brand_name"`
	LogoURL      string            `json:"logo_url,omitempty"`
	HeroTitle    string            `json:"hero_title,omitempty"`
	HeroSubtitle string            `json:"hero_subtitle,omitempty"`
	HeroImageURL string            `json:"hero_image_url,omitempty"`
	ContactLinks map[string]string `json:"contact_links"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func SiteConfigFromModel(c *db_models.SiteConfig) SiteConfigResponse {
	links := map[string]string{}
	if len(c.ContactLinks) > 0 {
		// A malformed jsonb value just renders as no links.
		_ = json.Unmarshal(c.ContactLinks, &links)
	}
	return SiteConfigResponse{
		BrandName:    c.BrandName,
		LogoURL:      c.LogoURL,
		HeroTitle:    c.HeroTitle,
		HeroSubtitle: c.HeroSubtitle,
		HeroImageURL: c.HeroImageURL,
		ContactLinks: links,
	}
}

func CategoriesFromModels(categories []db_models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID.String(), Name: c.Name})
	}
	return out
}
