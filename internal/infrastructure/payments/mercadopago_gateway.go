package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const GatewayMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences and hands back their init point.
type MercadoPagoGateway struct {
	client          preferenceCreator
	notificationURL string
	mockMode        bool
	log             *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, notificationURL string, mock bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("gateway", GatewayMercadoPago))

	if mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:          preference.NewClient(cfg),
		notificationURL: strings.TrimSpace(notificationURL),
		log:             log,
	}, nil
}

func (g *MercadoPagoGateway) Name() string { return GatewayMercadoPago }

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "pref_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("[payment][gateway] mock preference created", zap.String("preference_id", id), zap.String("pago_id", req.EntryID))
		return entities.CheckoutSession{ID: id, RedirectURL: req.SuccessURL}, nil
	}
	if g == nil || g.client == nil {
		return entities.CheckoutSession{}, entities.ErrGatewayNotConfigured
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	unitPrice, _ := decimal.New(req.AmountMinor, -2).Float64()

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         req.EntryID,
				Title:      req.Description,
				Quantity:   1,
				UnitPrice:  unitPrice,
				CurrencyID: strings.ToUpper(req.Currency),
			},
		},
		ExternalReference: req.EntryID,
		Metadata:          metadata,
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.SuccessURL,
			Failure: req.CancelURL,
		},
		NotificationURL: g.notificationURL,
	}

	g.log.Debug("[payment][gateway] create preference start",
		zap.String("pago_id", req.EntryID), zap.Int64("amount_minor", req.AmountMinor), zap.String("currency", req.Currency))

	resp, err := g.client.Create(ctx, request)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create preference failed", zap.String("pago_id", req.EntryID), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("mercadopago preference: %w", err)
	}

	g.log.Info("[payment][gateway] create preference success", zap.String("pago_id", req.EntryID), zap.String("preference_id", resp.ID))
	return entities.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}
