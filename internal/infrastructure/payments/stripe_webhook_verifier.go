package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// StripeWebhookVerifier checks the Stripe-Signature header and decodes
// checkout.session.completed events.
type StripeWebhookVerifier struct {
	secret string
	log    *zap.Logger
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(secret string, log *zap.Logger) *StripeWebhookVerifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &StripeWebhookVerifier{secret: strings.TrimSpace(secret), log: log.With(zap.String("gateway", GatewayStripe))}
}

func (v *StripeWebhookVerifier) Verify(_ context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error) {
	if v == nil || v.secret == "" {
		return entities.GatewayEvent{}, entities.ErrGatewayNotConfigured
	}

	// Events can be pinned to an older API version on the dashboard.
	event, err := webhook.ConstructEventWithOptions(payload, sig.Header, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		v.log.Debug("[payment][webhook] construct event failed", zap.Error(err))
		return entities.GatewayEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
	}

	out := entities.GatewayEvent{ID: event.ID, Type: string(event.Type), Kind: entities.GatewayEventIgnored}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}
	if event.Data == nil {
		return out, fmt.Errorf("stripe event %s has no data", event.ID)
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return out, fmt.Errorf("decode checkout session: %w", err)
	}

	out.Kind = entities.GatewayEventPaymentCompleted
	out.SessionID = cs.ID
	out.EntryID = cs.Metadata[entities.MetadataEntryID]
	out.PaymentStatus = string(cs.PaymentStatus)
	if cs.PaymentIntent != nil {
		out.PaymentIntentID = cs.PaymentIntent.ID
	}
	return out, nil
}
