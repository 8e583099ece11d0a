package refresh_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/services"
	"anuncia/internal/store"
)

var Module = fx.Provide(provideRefreshService)

func provideRefreshService(
	site *store.SiteStore,
	plans *store.PlanStore,
	posts *store.PostStore,
	users *store.UserStore,
	account services.AccountServiceInterface,
	post services.PostServiceInterface,
) services.RefreshServiceInterface {
	return services.NewRefreshService(site, plans, posts, users, account, post)
}
