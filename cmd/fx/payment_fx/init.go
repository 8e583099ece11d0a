package payment_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/repositories"
	"anuncia/internal/services"
	"anuncia/internal/store"
)

var Module = fx.Provide(providePaymentService)

func providePaymentService(transactions repositories.TransactionRepository, users *store.UserStore, plans *store.PlanStore) services.PaymentServiceInterface {
	return services.NewPaymentService(transactions, users, plans)
}
