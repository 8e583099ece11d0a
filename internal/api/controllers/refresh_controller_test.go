package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/pkg/utils"
)

type MockRefreshService struct {
	mock.Mock
}

func (m *MockRefreshService) Refresh(ctx context.Context, includeUsers bool) (*response_models.RefreshResponse, error) {
	args := m.Called(ctx, includeUsers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.RefreshResponse), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AccountLoginResponse), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AccountResponse), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AccountResponse), args.Error(1)
}

func (m *MockAccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.AccountResponse), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) (*response_models.AccountResponse, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AccountResponse), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func refreshRequest(t *testing.T, userID string, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/refresh", nil)
	if userID != "" {
		c.Set("user_id", userID)
		c.Set("role", role)
	}
	return c, rec
}

func TestRefreshRejectsBlockedSession(t *testing.T) {
	refreshSvc := new(MockRefreshService)
	accountSvc := new(MockAccountService)
	ctrl := NewRefreshController(refreshSvc, accountSvc)

	adminID := uuid.New()
	accountSvc.On("GetAccount", mock.Anything, adminID).Return(nil, utils.ErrAccountBlocked)

	c, rec := refreshRequest(t, adminID.String(), "ADMIN")
	ctrl.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	refreshSvc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestRefreshRejectsDeletedSession(t *testing.T) {
	refreshSvc := new(MockRefreshService)
	accountSvc := new(MockAccountService)
	ctrl := NewRefreshController(refreshSvc, accountSvc)

	userID := uuid.New()
	accountSvc.On("GetAccount", mock.Anything, userID).Return(nil, utils.ErrAccountNotFound)

	c, rec := refreshRequest(t, userID.String(), "ADVERTISER")
	ctrl.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	refreshSvc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestRefreshIncludesUsersOnlyForLiveAdminSession(t *testing.T) {
	refreshSvc := new(MockRefreshService)
	accountSvc := new(MockAccountService)
	ctrl := NewRefreshController(refreshSvc, accountSvc)

	adminID := uuid.New()
	accountSvc.On("GetAccount", mock.Anything, adminID).
		Return(&response_models.AccountResponse{ID: adminID.String(), Role: "ADMIN"}, nil)
	refreshSvc.On("Refresh", mock.Anything, true).
		Return(&response_models.RefreshResponse{}, nil)

	c, rec := refreshRequest(t, adminID.String(), "ADMIN")
	ctrl.Refresh(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	refreshSvc.AssertExpectations(t)
}

func TestRefreshTrustsFreshRoleOverTokenClaim(t *testing.T) {
	refreshSvc := new(MockRefreshService)
	accountSvc := new(MockAccountService)
	ctrl := NewRefreshController(refreshSvc, accountSvc)

	// Token still claims ADMIN but the account has since been demoted.
	userID := uuid.New()
	accountSvc.On("GetAccount", mock.Anything, userID).
		Return(&response_models.AccountResponse{ID: userID.String(), Role: "ADVERTISER"}, nil)
	refreshSvc.On("Refresh", mock.Anything, false).
		Return(&response_models.RefreshResponse{}, nil)

	c, rec := refreshRequest(t, userID.String(), "ADMIN")
	ctrl.Refresh(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	refreshSvc.AssertExpectations(t)
}

func TestRefreshServesAnonymousVisitors(t *testing.T) {
	refreshSvc := new(MockRefreshService)
	accountSvc := new(MockAccountService)
	ctrl := NewRefreshController(refreshSvc, accountSvc)

	refreshSvc.On("Refresh", mock.Anything, false).
		Return(&response_models.RefreshResponse{}, nil)

	c, rec := refreshRequest(t, "", "")
	ctrl.Refresh(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	accountSvc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}
