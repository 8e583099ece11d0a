package config_fx

import (
	"time"

	"go.uber.org/fx"

	"anuncia/internal/config"
	"anuncia/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideTokenIssuer)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return utils.NewTokenIssuer(cfg.JWTSecret, ttl)
}
