package post_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/services"
	"anuncia/internal/store"
)

var Module = fx.Provide(providePostService)

func providePostService(posts *store.PostStore, users *store.UserStore, assistant services.AssistantServiceInterface) services.PostServiceInterface {
	return services.NewPostService(posts, users, assistant)
}
