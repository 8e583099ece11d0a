package store

import (
	"context"
	"log"

	"github.com/google/uuid"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/repositories"
	"anuncia/pkg/utils"
)

type PlanStore struct {
	repo repositories.PlanRepository
	snap cache.SnapshotStore
}

func NewPlanStore(repo repositories.PlanRepository, snap cache.SnapshotStore) *PlanStore {
	return &PlanStore{repo: repo, snap: snap}
}

func (s *PlanStore) Fetch(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("plan fetch falling back to snapshot: %v", err)
		var cached []db_models.Plan
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyPlans, &cached); cacheErr == nil && ok {
			return cached, nil
		}
		return nil, utils.ErrDatabaseError
	}
	if err := s.snap.Set(ctx, cache.KeyPlans, plans); err != nil {
		log.Printf("plan snapshot refresh failed: %v", err)
	}
	return plans, nil
}

func (s *PlanStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var cached []db_models.Plan
		if ok, cacheErr := s.snap.Get(ctx, cache.KeyPlans, &cached); cacheErr == nil && ok {
			for i := range cached {
				if cached[i].ID == id {
					return &cached[i], nil
				}
			}
		}
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *PlanStore) Upsert(ctx context.Context, plan *db_models.Plan) WriteReceipt {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	receipt := WriteReceipt{Local: true}

	var cached []db_models.Plan
	_, _ = s.snap.Get(ctx, cache.KeyPlans, &cached)
	cached = replacePlan(cached, plan)
	if err := s.snap.Set(ctx, cache.KeyPlans, cached); err != nil {
		receipt.Local = false
		log.Printf("plan snapshot write failed: %v", err)
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		receipt.Remote = err
		log.Printf("plan remote write failed, local snapshot kept: %v", err)
	}
	return receipt
}

func (s *PlanStore) Delete(ctx context.Context, id uuid.UUID) WriteReceipt {
	receipt := WriteReceipt{Local: true}

	var cached []db_models.Plan
	if ok, _ := s.snap.Get(ctx, cache.KeyPlans, &cached); ok {
		kept := cached[:0]
		for i := range cached {
			if cached[i].ID != id {
				kept = append(kept, cached[i])
			}
		}
		if err := s.snap.Set(ctx, cache.KeyPlans, kept); err != nil {
			receipt.Local = false
			log.Printf("plan snapshot delete failed: %v", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		receipt.Remote = err
		log.Printf("plan remote delete failed, local snapshot kept: %v", err)
	}
	return receipt
}

func replacePlan(plans []db_models.Plan, plan *db_models.Plan) []db_models.Plan {
	for i := range plans {
		if plans[i].ID == plan.ID {
			plans[i] = *plan
			return plans
		}
	}
	return append(plans, *plan)
}
