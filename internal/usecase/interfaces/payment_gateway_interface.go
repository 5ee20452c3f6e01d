package interfaces

import (
	"context"

	"teamflow_payments/internal/domain/entities"
)

// ICheckoutGateway abstracts hosted-checkout providers (Stripe, Mercado Pago).
//
// Implementations return entities.ErrGatewayNotConfigured when credentials are missing.
type ICheckoutGateway interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error)
}

// IWebhookVerifier authenticates a raw webhook delivery and decodes it.
//
// payload must be the untouched request body. A signature mismatch returns
// entities.ErrInvalidSignature; anything else is an internal failure.
type IWebhookVerifier interface {
	Verify(ctx context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error)
}
