package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"
)

const GatewayStripe = "stripe"

// StripeGateway creates hosted Stripe Checkout sessions in payment mode.
type StripeGateway struct {
	sessions *session.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

// NewStripeGateway never fails: a missing key surfaces per call as
// entities.ErrGatewayNotConfigured so the service can still boot.
func NewStripeGateway(secretKey string, mock bool, log *zap.Logger) *StripeGateway {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("gateway", GatewayStripe))

	if mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true, log: log}
	}

	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		log.Warn("[payment][gateway] missing STRIPE_SECRET_KEY")
		return &StripeGateway{log: log}
	}

	log.Info("[payment][gateway] stripe client initialized")
	return &StripeGateway{
		sessions: &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		log:      log,
	}
}

func (g *StripeGateway) Name() string { return GatewayStripe }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "cs_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("[payment][gateway] mock session created", zap.String("session_id", id), zap.String("pago_id", req.EntryID))
		return entities.CheckoutSession{ID: id, RedirectURL: req.SuccessURL}, nil
	}
	if g == nil || g.sessions == nil {
		return entities.CheckoutSession{}, entities.ErrGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.EntryID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
		params.PaymentIntentData.Metadata[k] = v
	}

	g.log.Debug("[payment][gateway] create session start",
		zap.String("pago_id", req.EntryID), zap.Int64("amount_minor", req.AmountMinor), zap.String("currency", req.Currency))

	s, err := g.sessions.New(params)
	if err != nil {
		g.log.Error("[payment][gateway] create session failed", zap.String("pago_id", req.EntryID), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("stripe checkout session: %w", err)
	}

	g.log.Info("[payment][gateway] create session success", zap.String("pago_id", req.EntryID), zap.String("session_id", s.ID))
	return entities.CheckoutSession{ID: s.ID, RedirectURL: s.URL}, nil
}
