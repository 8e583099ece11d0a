package store_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/store"
)

var Module = fx.Provide(
	store.NewUserStore,
	store.NewPostStore,
	store.NewPlanStore,
	store.NewSiteStore,
)
