package plan_fx

import (
	"go.uber.org/fx"

	"anuncia/internal/services"
	"anuncia/internal/store"
)

var Module = fx.Provide(providePlanService)

func providePlanService(plans *store.PlanStore) services.PlanServiceInterface {
	return services.NewPlanService(plans)
}
