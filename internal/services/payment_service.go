package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"anuncia/internal/models/db_models"
	"anuncia/internal/models/request_models"
	"anuncia/internal/models/response_models"
	"anuncia/internal/repositories"
	"anuncia/internal/rules"
	"anuncia/internal/store"
	"anuncia/pkg/utils"
)

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, userID uuid.UUID, request request_models.ConfirmPaymentRequest) (*response_models.PaymentConfirmedResponse, error)
}

type PaymentService struct {
	transactions repositories.TransactionRepository
	users        *store.UserStore
	plans        *store.PlanStore
}

func NewPaymentService(transactions repositories.TransactionRepository, users *store.UserStore, plans *store.PlanStore) PaymentServiceInterface {
	return &PaymentService{transactions: transactions, users: users, plans: plans}
}

// CreateCheckout opens a pending payment intent for the chosen plan. The
// provider reference is issued here so the later confirmation can be matched
// and deduplicated.
func (p *PaymentService) CreateCheckout(ctx context.Context, userID uuid.UUID, request request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error) {
	user, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.Blocked {
		return nil, utils.ErrAccountBlocked
	}

	planID, err := uuid.Parse(request.PlanID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}
	plan, err := p.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return nil, utils.ErrPlanNotFound
	}

	providerTxnID, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	txn := &db_models.Transaction{
		UserID:        user.ID,
		PlanID:        plan.ID,
		AmountMinor:   plan.PriceMinor,
		Currency:      plan.Currency,
		Status:        db_models.TxnStatusPending,
		Provider:      "manual",
		ProviderTxnID: providerTxnID,
	}
	if err := p.transactions.Insert(ctx, txn); err != nil {
		log.Printf("checkout insert failed for user %s: %v", user.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutResponse{
		ProviderTxnID: txn.ProviderTxnID,
		AmountMinor:   txn.AmountMinor,
		Currency:      txn.Currency,
		PlanID:        txn.PlanID.String(),
		Status:        string(txn.Status),
	}, nil
}

// ConfirmPayment settles a pending intent and activates the subscriber.
// Calling it twice for the same reference returns ErrPaymentSettled.
func (p *PaymentService) ConfirmPayment(ctx context.Context, userID uuid.UUID, request request_models.ConfirmPaymentRequest) (*response_models.PaymentConfirmedResponse, error) {
	txn, err := p.transactions.FindByProviderTxnID(ctx, request.ProviderTxnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil || txn.UserID != userID {
		return nil, utils.ErrPaymentNotFound
	}
	if txn.Status != db_models.TxnStatusPending {
		return nil, utils.ErrPaymentSettled
	}

	user, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	now := time.Now()
	paidAt := now.Unix()
	txn.Status = db_models.TxnStatusPaid
	txn.PaidAt = &paidAt
	if err := p.transactions.Update(ctx, txn); err != nil {
		log.Printf("payment settle failed for txn %s: %v", txn.ProviderTxnID, err)
		return nil, utils.ErrDatabaseError
	}

	confirmedAt := now.Unix()
	expiresAt := rules.ExpiryAt(now).Unix()
	user.PaymentStatus = db_models.PaymentConfirmed
	user.PaymentConfirmedAt = &confirmedAt
	user.ExpiresAt = &expiresAt
	user.PlanID = &txn.PlanID

	receipt := p.users.Upsert(ctx, user)
	if !receipt.Local {
		return nil, utils.ErrDatabaseError
	}
	if !receipt.RemoteOK() {
		log.Printf("subscription for user %s activated locally only: %v", user.ID, receipt.Remote)
	}

	return &response_models.PaymentConfirmedResponse{
		PaymentStatus: string(user.PaymentStatus),
		ExpiresAt:     expiresAt,
		RemainingDays: rules.RemainingDays(now, now),
	}, nil
}
