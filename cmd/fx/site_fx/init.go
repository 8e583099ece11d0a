package site_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/services"
	"anuncia/internal/store"
)

var Module = fx.Provide(provideSiteService)

func provideSiteService(site *store.SiteStore) services.SiteServiceInterface {
	return services.NewSiteService(site)
}
