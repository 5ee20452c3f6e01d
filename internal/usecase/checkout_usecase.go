package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidEntryID              = errors.New("invalid pago_id")
	ErrLedgerEntryNotFound         = errors.New("ledger entry not found")
	ErrEntryNotOwned               = errors.New("ledger entry belongs to another payer")
	ErrEntryNotPayable             = errors.New("ledger entry is not payable")
	ErrInvalidEntryAmount          = errors.New("ledger entry amount cannot be charged")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayFailure       = errors.New("payment gateway failure")
)

// CheckoutOptions carries the redirect targets and fallback currency for new sessions.
type CheckoutOptions struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

type CheckoutResult struct {
	EntryID   string
	SessionID string
	URL       string
}

// ICheckoutUseCase starts a hosted checkout for one ledger entry.
type ICheckoutUseCase interface {
	Initiate(ctx context.Context, entryID, userID string) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	ledger   interfaces.ILedgerRepository
	profiles interfaces.IProfileRepository
	gateway  interfaces.ICheckoutGateway
	opts     CheckoutOptions
	log      *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(ledger interfaces.ILedgerRepository, profiles interfaces.IProfileRepository, gateway interfaces.ICheckoutGateway, opts CheckoutOptions, log *zap.Logger) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	opts.Currency = strings.ToLower(opts.Currency)
	return &CheckoutUseCase{ledger: ledger, profiles: profiles, gateway: gateway, opts: opts, log: log}
}

// Initiate checks, in order: caller authenticated, caller is a payer, entry exists,
// entry belongs to the caller, entry is pending, amount is chargeable. Only then is a
// gateway session created. The entry status never changes here.
func (u *CheckoutUseCase) Initiate(ctx context.Context, entryID, userID string) (CheckoutResult, error) {
	entryID = strings.TrimSpace(entryID)
	u.log.Info("[checkout][usecase] initiate start", zap.String("pago_id", entryID), zap.String("user_id", userID))

	profile, err := loadProfile(ctx, u.profiles, userID)
	if err != nil {
		if !errors.Is(err, ErrUnauthenticated) {
			u.log.Error("[checkout][usecase] profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		}
		return CheckoutResult{}, err
	}
	payerID, err := requirePayer(profile)
	if err != nil {
		u.log.Warn("[checkout][usecase] forbidden role",
			zap.String("user_id", profile.UserID), zap.Stringer("role", profile.Role), zap.String("pago_id", entryID))
		return CheckoutResult{}, err
	}

	if entryID == "" {
		return CheckoutResult{}, ErrInvalidEntryID
	}
	if u.ledger == nil {
		return CheckoutResult{}, errors.New("ledger repository not configured")
	}
	entry, err := u.ledger.GetByID(ctx, entryID)
	if err != nil {
		u.log.Error("[checkout][usecase] failed loading entry", zap.String("pago_id", entryID), zap.Error(err))
		return CheckoutResult{}, err
	}
	if entry.ID == "" {
		u.log.Info("[checkout][usecase] entry not found", zap.String("pago_id", entryID))
		return CheckoutResult{}, ErrLedgerEntryNotFound
	}
	if entry.PayerID != payerID {
		u.log.Warn("[checkout][usecase] entry not owned by caller",
			zap.String("pago_id", entryID), zap.String("user_id", profile.UserID), zap.String("payer_id", payerID))
		return CheckoutResult{}, ErrEntryNotOwned
	}
	if !entry.IsPayable() {
		u.log.Info("[checkout][usecase] entry not payable", zap.String("pago_id", entryID), zap.String("estado", string(entry.Status)))
		return CheckoutResult{}, ErrEntryNotPayable
	}
	amountMinor, err := entry.MinorUnits()
	if err != nil {
		u.log.Warn("[checkout][usecase] invalid amount", zap.String("pago_id", entryID), zap.String("amount", entry.Amount.String()))
		return CheckoutResult{}, ErrInvalidEntryAmount
	}
	if u.gateway == nil {
		u.log.Error("[checkout][usecase] gateway not configured", zap.String("pago_id", entryID))
		return CheckoutResult{}, ErrPaymentGatewayNotConfigured
	}

	currency := entry.Currency
	if currency == "" {
		currency = u.opts.Currency
	}
	req := entities.CheckoutSessionRequest{
		EntryID:     entry.ID,
		Description: entry.Concept,
		AmountMinor: amountMinor,
		Currency:    strings.ToLower(currency),
		SuccessURL:  u.opts.SuccessURL,
		CancelURL:   u.opts.CancelURL,
		Metadata: map[string]string{
			entities.MetadataEntryID:   entry.ID,
			entities.MetadataSubjectID: entry.SubjectID,
			entities.MetadataUserID:    profile.UserID,
		},
	}

	u.log.Info("[checkout][usecase] calling payment gateway",
		zap.String("pago_id", entryID), zap.String("gateway", u.gateway.Name()), zap.Int64("amount_minor", amountMinor))
	session, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		u.log.Error("[checkout][usecase] payment gateway failed", zap.String("pago_id", entryID), zap.Error(err))
		if errors.Is(err, entities.ErrGatewayNotConfigured) {
			return CheckoutResult{}, ErrPaymentGatewayNotConfigured
		}
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}

	if err := u.ledger.AttachCheckoutSession(ctx, entry.ID, session.ID); err != nil {
		// The session exists on the gateway side; a completed payment still reconciles
		// through the pago_id metadata.
		u.log.Error("[checkout][usecase] orphaned checkout session, manual reconciliation required",
			zap.String("pago_id", entry.ID),
			zap.String("session_id", session.ID),
			zap.String("gateway", u.gateway.Name()),
			zap.Error(err))
	}

	u.log.Info("[checkout][usecase] initiate success", zap.String("pago_id", entry.ID), zap.String("session_id", session.ID))
	return CheckoutResult{EntryID: entry.ID, SessionID: session.ID, URL: session.RedirectURL}, nil
}
