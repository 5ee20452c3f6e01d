package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrWebhookNotConfigured    = errors.New("webhook verification not configured")
)

// WebhookOutcome tells what a delivery did. Every outcome is acknowledged to the gateway.
type WebhookOutcome string

const (
	WebhookIgnored        WebhookOutcome = "ignored"
	WebhookMissingEntryID WebhookOutcome = "missing_entry_id"
	WebhookUnknownEntry   WebhookOutcome = "unknown_entry"
	WebhookMarkedPaid     WebhookOutcome = "marked_paid"
)

type WebhookResult struct {
	Outcome   WebhookOutcome
	EventID   string
	EventType string
	EntryID   string
}

// IWebhookUseCase reconciles the ledger with one gateway's notifications.
type IWebhookUseCase interface {
	Handle(ctx context.Context, payload []byte, sig entities.WebhookSignature) (WebhookResult, error)
}

type WebhookUseCase struct {
	verifier interfaces.IWebhookVerifier
	ledger   interfaces.ILedgerRepository
	cache    interfaces.IPaymentSummaryCache
	log      *zap.Logger
	now      func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase wires a reconciler for provider. cache may be nil.
func NewWebhookUseCase(provider string, verifier interfaces.IWebhookVerifier, ledger interfaces.ILedgerRepository, cache interfaces.IPaymentSummaryCache, log *zap.Logger) *WebhookUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookUseCase{
		verifier: verifier,
		ledger:   ledger,
		cache:    cache,
		log:      log.With(zap.String("gateway", provider)),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Handle verifies payload and applies the pending -> paid transition.
//
// Returns ErrInvalidSignature-class errors for forged deliveries; any other error
// means the gateway should retry.
func (u *WebhookUseCase) Handle(ctx context.Context, payload []byte, sig entities.WebhookSignature) (WebhookResult, error) {
	if u.verifier == nil {
		u.log.Error("[webhook][usecase] verifier not configured")
		return WebhookResult{}, ErrWebhookNotConfigured
	}

	event, err := u.verifier.Verify(ctx, payload, sig)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrInvalidSignature):
		u.log.Warn("[webhook][usecase] signature rejected", zap.Int("payload_len", len(payload)), zap.Error(err))
		return WebhookResult{}, ErrInvalidWebhookSignature
	case errors.Is(err, entities.ErrGatewayNotConfigured):
		u.log.Error("[webhook][usecase] webhook secret not configured")
		return WebhookResult{}, ErrWebhookNotConfigured
	default:
		u.log.Error("[webhook][usecase] verification failed", zap.Error(err))
		return WebhookResult{}, fmt.Errorf("verify webhook: %w", err)
	}

	result := WebhookResult{EventID: event.ID, EventType: event.Type, EntryID: strings.TrimSpace(event.EntryID)}
	if event.Kind != entities.GatewayEventPaymentCompleted {
		u.log.Info("[webhook][usecase] event ignored", zap.String("event_id", event.ID), zap.String("type", event.Type))
		result.Outcome = WebhookIgnored
		return result, nil
	}
	if result.EntryID == "" {
		u.log.Warn("[webhook][usecase] completion without pago_id", zap.String("event_id", event.ID))
		result.Outcome = WebhookMissingEntryID
		return result, nil
	}
	if u.ledger == nil {
		return WebhookResult{}, errors.New("ledger repository not configured")
	}

	gatewayStatus := strings.TrimSpace(event.PaymentStatus)
	if gatewayStatus == "" {
		gatewayStatus = entities.GatewayStatusPaid
	}
	updated, found, err := u.ledger.MarkPaid(ctx, result.EntryID, u.now(), gatewayStatus, event.PaymentIntentID)
	if err != nil {
		u.log.Error("[webhook][usecase] mark paid failed", zap.String("pago_id", result.EntryID), zap.Error(err))
		return WebhookResult{}, err
	}
	if !found {
		u.log.Warn("[webhook][usecase] completion for unknown entry", zap.String("pago_id", result.EntryID), zap.String("event_id", event.ID))
		result.Outcome = WebhookUnknownEntry
		return result, nil
	}

	u.log.Info("[webhook][usecase] entry marked paid",
		zap.String("pago_id", updated.ID), zap.String("event_id", event.ID), zap.String("stripe_status", gatewayStatus))
	u.refreshSummary(ctx, updated)

	result.Outcome = WebhookMarkedPaid
	return result, nil
}

func (u *WebhookUseCase) refreshSummary(ctx context.Context, e entities.LedgerEntry) {
	if u.cache == nil || e.PayerID == "" || e.SubjectID == "" {
		return
	}
	if _, _, err := u.cache.Refresh(ctx, e.PayerID, e.SubjectID); err != nil {
		u.log.Warn("[webhook][usecase] summary refresh failed",
			zap.String("payer_id", e.PayerID), zap.String("subject_id", e.SubjectID), zap.Error(err))
	}
}
