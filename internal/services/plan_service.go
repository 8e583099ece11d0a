package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, request request_models.SavePlanRequest) (*response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, request request_models.SavePlanRequest) (*response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type PlanService struct {
	plans *store.PlanStore
}

func NewPlanService(plans *store.PlanStore) PlanServiceInterface {
	return &PlanService{plans: plans}
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.plans.Fetch(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.PlansFromModels(plans), nil
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.SavePlanRequest) (*response_models.PlanResponse, error) {
	plan := &db_models.Plan{}
	applyPlanRequest(plan, request)

	receipt := p.plans.Upsert(ctx, plan)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("plan %s created locally only: %v", plan.ID, receipt.Remote)
	}

	resp := response_models.PlanFromModel(plan)
	return &resp, nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID uuid.UUID, request request_models.SavePlanRequest) (*response_models.PlanResponse, error) {
	plan, err := p.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	applyPlanRequest(plan, request)

	receipt := p.plans.Upsert(ctx, plan)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.PlanFromModel(plan)
	return &resp, nil
}

// DeletePlan leaves user PlanID references dangling on purpose: the plan id
// is a weak reference and readers tolerate it.
func (p *PlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	plan, err := p.plans.FindByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	p.plans.Delete(ctx, planID)
	return nil
}

func applyPlanRequest(plan *db_models.Plan, request request_models.SavePlanRequest) {
	plan.Name = request.Name
	plan.Description = request.Description
	plan.PriceMinor = request.PriceMinor
	if request.Currency != "" {
		plan.Currency = request.Currency
	} else if plan.Currency == "" {
		plan.Currency = "BRL"
	}
	if request.DurationDays > 0 {
		plan.DurationDays = request.DurationDays
	} else if plan.DurationDays == 0 {
		plan.DurationDays = 30
	}
	if request.IsActive != nil {
		plan.IsActive = *request.IsActive
	} else {
		plan.IsActive = true
	}
}
