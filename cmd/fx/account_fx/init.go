package account_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/services"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

var Module = fx.Provide(provideAccountService)

func provideAccountService(users *store.UserStore, issuer *utils.TokenIssuer) services.AccountServiceInterface {
	return services.NewAccountService(users, issuer)
}
