package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anuncia/internal/cache"
	"anuncia/internal/models/db_models"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type MockSiteConfigRepository struct {
	mock.Mock
}

func (m *MockSiteConfigRepository) Get(ctx context.Context) (*db_models.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigRepository) Save(ctx context.Context, cfg *db_models.SiteConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Category), args.Error(1)
}

type refreshFixture struct {
	svc        RefreshServiceInterface
	userRepo   *MockUserRepository
	postRepo   *MockPostRepository
	planRepo   *MockPlanRepository
	configRepo *MockSiteConfigRepository
	catRepo    *MockCategoryRepository
}

func newRefreshFixture() *refreshFixture {
	f := &refreshFixture{
		userRepo:   new(MockUserRepository),
		postRepo:   new(MockPostRepository),
		planRepo:   new(MockPlanRepository),
		configRepo: new(MockSiteConfigRepository),
		catRepo:    new(MockCategoryRepository),
	}
	snap := cache.NewMemorySnapshots()
	users := store.NewUserStore(f.userRepo, snap)
	posts := store.NewPostStore(f.postRepo, snap)
	plans := store.NewPlanStore(f.planRepo, snap)
	site := store.NewSiteStore(f.configRepo, f.catRepo, snap)

	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	account := NewAccountService(users, issuer)
	post := NewPostService(posts, users, nil)
	f.svc = NewRefreshService(site, plans, posts, users, account, post)
	return f
}

func TestRefreshDemotesLapsedSubscriptions(t *testing.T) {
	ctx := context.Background()
	f := newRefreshFixture()

	lapsed := confirmedUser("lapsed@example.com", "pw")
	lapsedConfirmed := time.Now().Add(-31 * 24 * time.Hour).Unix()
	lapsedExpires := time.Now().Add(-24 * time.Hour).Unix()
	lapsed.PaymentConfirmedAt = &lapsedConfirmed
	lapsed.ExpiresAt = &lapsedExpires

	current := confirmedUser("current@example.com", "pw")

	// The second users read falls back to the snapshot, which already holds
	// the demoted record written by the sweep.
	f.userRepo.On("ListAll", ctx).Return([]db_models.User{*lapsed, *current}, nil).Once()
	f.userRepo.On("ListAll", ctx).Return(nil, assert.AnError)
	f.userRepo.On("Update", ctx, mock.AnythingOfType("*db_models.User")).Return(nil)
	f.configRepo.On("Get", ctx).Return(&db_models.SiteConfig{BrandName: "Classificados"}, nil)
	f.planRepo.On("ListAll", ctx).Return([]db_models.Plan{}, nil)
	f.catRepo.On("ListAll", ctx).Return([]db_models.Category{}, nil)
	f.postRepo.On("ListAll", ctx).Return([]db_models.Post{}, nil)

	resp, err := f.svc.Refresh(ctx, true)
	require.NoError(t, err)

	byEmail := make(map[string]int)
	for i := range resp.Users {
		byEmail[resp.Users[i].Email] = i
	}
	demoted := resp.Users[byEmail["lapsed@example.com"]]
	assert.Equal(t, string(db_models.PaymentAwaiting), demoted.PaymentStatus)
	assert.Zero(t, demoted.ExpiresAt)
	assert.Zero(t, demoted.RemainingDays)

	kept := resp.Users[byEmail["current@example.com"]]
	assert.Equal(t, string(db_models.PaymentConfirmed), kept.PaymentStatus)
	assert.Equal(t, 30, kept.RemainingDays)
}

func TestRefreshOmitsUsersForPublicCallers(t *testing.T) {
	ctx := context.Background()
	f := newRefreshFixture()

	f.userRepo.On("ListAll", ctx).Return([]db_models.User{}, nil)
	f.configRepo.On("Get", ctx).Return(&db_models.SiteConfig{BrandName: "Classificados"}, nil)
	f.planRepo.On("ListAll", ctx).Return([]db_models.Plan{}, nil)
	f.catRepo.On("ListAll", ctx).Return([]db_models.Category{}, nil)
	f.postRepo.On("ListAll", ctx).Return([]db_models.Post{}, nil)

	resp, err := f.svc.Refresh(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, resp.Users)
	assert.Equal(t, "Classificados", resp.Config.BrandName)
}

func TestRefreshServesSnapshotsWhenBackendIsDown(t *testing.T) {
	ctx := context.Background()
	f := newRefreshFixture()

	f.userRepo.On("ListAll", ctx).Return([]db_models.User{}, nil).Once()
	f.configRepo.On("Get", ctx).Return(&db_models.SiteConfig{BrandName: "Classificados"}, nil).Once()
	f.planRepo.On("ListAll", ctx).Return([]db_models.Plan{*activePlan()}, nil).Once()
	f.catRepo.On("ListAll", ctx).Return([]db_models.Category{{Name: "services"}}, nil).Once()
	f.postRepo.On("ListAll", ctx).Return([]db_models.Post{}, nil).Once()

	_, err := f.svc.Refresh(ctx, false)
	require.NoError(t, err)

	// Backend goes away; every read falls back to the snapshots taken above.
	down := assert.AnError
	f.userRepo.On("ListAll", ctx).Return(nil, down)
	f.configRepo.On("Get", ctx).Return(nil, down)
	f.planRepo.On("ListAll", ctx).Return(nil, down)
	f.catRepo.On("ListAll", ctx).Return(nil, down)
	f.postRepo.On("ListAll", ctx).Return(nil, down)

	resp, err := f.svc.Refresh(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Classificados", resp.Config.BrandName)
	require.Len(t, resp.Plans, 1)
	assert.Equal(t, "Mensal", resp.Plans[0].Name)
}
