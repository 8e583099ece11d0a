package services

import (
	"context"
	"log"
	"sync"
	"time"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/rules"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type RefreshServiceInterface interface {
	Refresh(ctx context.Context, includeUsers bool) (*response_models.RefreshResponse, error)
}

// RefreshService assembles the batched snapshot the client renders from. It
// also runs the subscription sweep: there is no scheduler, so lapsed
// subscriptions are demoted whenever somebody loads the page.
type RefreshService struct {
	site    *store.SiteStore
	plans   *store.PlanStore
	posts   *store.PostStore
	users   *store.UserStore
	account AccountServiceInterface
	post    PostServiceInterface
}

func NewRefreshService(site *store.SiteStore, plans *store.PlanStore, posts *store.PostStore, users *store.UserStore, account AccountServiceInterface, post PostServiceInterface) RefreshServiceInterface {
	return &RefreshService{site: site, plans: plans, posts: posts, users: users, account: account, post: post}
}

func (r *RefreshService) Refresh(ctx context.Context, includeUsers bool) (*response_models.RefreshResponse, error) {
	r.sweepExpired(ctx)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		out  response_models.RefreshResponse
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		cfg, err := r.site.FetchConfig(ctx)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		out.Config = response_models.SiteConfigFromModel(cfg)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		plans, err := r.plans.Fetch(ctx)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		out.Plans = response_models.PlansFromModels(plans)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		categories, err := r.site.FetchCategories(ctx)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		out.Categories = response_models.CategoriesFromModels(categories)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		feed, err := r.post.PublicFeed(ctx)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		out.Posts = feed
		mu.Unlock()
	}()
	wg.Wait()

	if len(errs) > 0 {
		return nil, utils.ErrDatabaseError
	}

	if includeUsers {
		users, err := r.account.GetAllAccounts(ctx)
		if err != nil {
			return nil, err
		}
		out.Users = users
	}
	return &out, nil
}

// sweepExpired demotes confirmed subscribers whose 30-day window has lapsed.
// Failures are logged and skipped; the next refresh retries them.
func (r *RefreshService) sweepExpired(ctx context.Context) {
	users, err := r.users.Fetch(ctx)
	if err != nil {
		log.Printf("expiry sweep skipped, users unavailable: %v", err)
		return
	}

	now := time.Now()
	for i := range users {
		u := &users[i]
		if u.PaymentStatus != db_models.PaymentConfirmed || u.PaymentConfirmedAt == nil {
			continue
		}
		if !rules.Expired(utils.FromUnixSeconds(*u.PaymentConfirmedAt), now) {
			continue
		}

		u.PaymentStatus = db_models.PaymentAwaiting
		u.PaymentConfirmedAt = nil
		u.ExpiresAt = nil
		receipt := r.users.Upsert(ctx, u)
		if !receipt.Local {
			log.Printf("expiry demotion for user %s not applied", u.ID)
			continue
		}
		if !receipt.RemoteOK() {
			log.Printf("expiry demotion for user %s applied locally only: %v", u.ID, receipt.Remote)
		}
	}
}
