package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"anuncia/internal/config"
	"anuncia/internal/infra"
	"anuncia/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(provideDatabase),
	fx.Provide(
		repositories.NewUserRepository,
		repositories.NewPostRepository,
		repositories.NewPlanRepository,
		repositories.NewSiteConfigRepository,
		repositories.NewCategoryRepository,
		repositories.NewTransactionRepository,
		repositories.NewAdEmbeddingRepository,
	),
)

func provideDatabase(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}
