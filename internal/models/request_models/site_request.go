package request_models

// SaveSiteConfigRequest replaces the singleton wholesale; omitted fields are
// saved as their zero values, matching the admin form which always submits
// the full record.
type SaveSiteConfigRequest struct {
	BrandName    string            `json:"brand_name" binding:"required"`
	LogoURL      string            `json:"logo_url,omitempty"`
	HeroTitle    string            `json:"hero_title,omitempty"`
	HeroSubtitle string            `json:"hero_subtitle,omitempty"`
	HeroImageURL string            `json:"hero_image_url,omitempty"`
	ContactLinks map[string]string `json:"contact_links,omitempty"`
}

type SaveCategoryRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}
