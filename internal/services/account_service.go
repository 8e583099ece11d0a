package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/rules"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) (*response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type AccountService struct {
	users  *store.UserStore
	issuer *utils.TokenIssuer
}

func NewAccountService(users *store.UserStore, issuer *utils.TokenIssuer) AccountServiceInterface {
	return &AccountService{users: users, issuer: issuer}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	user, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		// Same sentinel as a wrong password so the response can't be used
		// to probe which emails are registered.
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if user.Blocked {
		return nil, utils.ErrAccountBlocked
	}

	token, err := a.issuer.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	resp := accountResponse(user)
	return &response_models.AccountLoginResponse{Token: token, User: resp}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		DisplayName:   request.DisplayName,
		Email:         request.Email,
		PasswordHash:  hashedPassword,
		Role:          db_models.RoleAdvertiser,
		Profession:    request.Profession,
		PaymentStatus: db_models.PaymentAwaiting,
	}

	receipt := a.users.Upsert(ctx, newUser)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}

	resp := accountResponse(newUser)
	return &resp, nil
}

// GetAccount also serves session re-validation: a missing or blocked user
// invalidates the caller's session.
func (a *AccountService) GetAccount(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.Blocked {
		return nil, utils.ErrAccountBlocked
	}

	resp := accountResponse(user)
	return &resp, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	users, err := a.users.Fetch(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(users))
	for i := range users {
		out = append(out, accountResponse(&users[i]))
	}
	return out, nil
}

func (a *AccountService) UpdateAccount(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) (*response_models.AccountResponse, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.DisplayName != nil {
		user.DisplayName = *request.DisplayName
	}
	if request.Profession != nil {
		user.Profession = *request.Profession
	}
	if request.Role != nil {
		role := db_models.Role(*request.Role)
		if !role.Valid() {
			return nil, utils.ErrInvalidFieldValue
		}
		user.Role = role
	}
	if request.PaymentStatus != nil {
		status := db_models.PaymentStatus(*request.PaymentStatus)
		if !status.Valid() {
			return nil, utils.ErrInvalidFieldValue
		}
		applyPaymentStatus(user, status)
	}
	if request.PlanID != nil {
		if *request.PlanID == "" {
			user.PlanID = nil
		} else if planID, parseErr := uuid.Parse(*request.PlanID); parseErr == nil {
			user.PlanID = &planID
		}
	}
	if request.Blocked != nil {
		user.Blocked = *request.Blocked
	}

	// Admins are never payment-gated.
	if user.IsAdmin() {
		user.PaymentStatus = db_models.PaymentNotApplicable
		user.PaymentConfirmedAt = nil
		user.ExpiresAt = nil
	}

	receipt := a.users.Upsert(ctx, user)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("account %s updated locally only: %v", user.ID, receipt.Remote)
	}

	resp := accountResponse(user)
	return &resp, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	receipt := a.users.Delete(ctx, userID)
	if !receipt.Local {
		return utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("account %s deleted locally only: %v", userID, receipt.Remote)
	}
	return nil
}

// applyPaymentStatus keeps the confirmation timestamps consistent with the
// status an admin sets by hand.
func applyPaymentStatus(user *db_models.User, status db_models.PaymentStatus) {
	user.PaymentStatus = status
	switch status {
	case db_models.PaymentConfirmed:
		now := time.Now()
		confirmedAt := now.Unix()
		expiresAt := rules.ExpiryAt(now).Unix()
		user.PaymentConfirmedAt = &confirmedAt
		user.ExpiresAt = &expiresAt
	default:
		user.PaymentConfirmedAt = nil
		user.ExpiresAt = nil
	}
}

func accountResponse(user *db_models.User) response_models.AccountResponse {
	remaining := 0
	if user.PaymentStatus == db_models.PaymentConfirmed && user.PaymentConfirmedAt != nil {
		remaining = rules.RemainingDays(utils.FromUnixSeconds(*user.PaymentConfirmedAt), time.Now())
	}
	return response_models.AccountFromUser(user, remaining)
}
