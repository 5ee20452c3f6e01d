package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

const mercadoPagoApproved = "approved"

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoWebhookVerifier validates the x-signature manifest and then reads
// the payment back from the API: notification bodies carry only the payment id.
type MercadoPagoWebhookVerifier struct {
	secret   string
	payments paymentFetcher
	log      *zap.Logger
}

var _ interfaces.IWebhookVerifier = (*MercadoPagoWebhookVerifier)(nil)

func NewMercadoPagoWebhookVerifier(accessToken, secret string, log *zap.Logger) (*MercadoPagoWebhookVerifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	v := &MercadoPagoWebhookVerifier{secret: strings.TrimSpace(secret), log: log.With(zap.String("gateway", GatewayMercadoPago))}
	if strings.TrimSpace(accessToken) == "" {
		return v, nil
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	v.payments = payment.NewClient(cfg)
	return v, nil
}

// mercadoPagoID accepts ids sent either as JSON numbers or strings.
type mercadoPagoID string

func (id *mercadoPagoID) UnmarshalJSON(b []byte) error {
	if s, err := strconv.Unquote(string(b)); err == nil {
		*id = mercadoPagoID(s)
		return nil
	}
	if string(b) == "null" {
		*id = ""
		return nil
	}
	*id = mercadoPagoID(b)
	return nil
}

type mercadoPagoNotification struct {
	ID     mercadoPagoID `json:"id"`
	Type   string        `json:"type"`
	Action string        `json:"action"`
	Data   struct {
		ID mercadoPagoID `json:"id"`
	} `json:"data"`
}

func (v *MercadoPagoWebhookVerifier) Verify(ctx context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error) {
	if v == nil || v.secret == "" || v.payments == nil {
		return entities.GatewayEvent{}, entities.ErrGatewayNotConfigured
	}

	var n mercadoPagoNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("%w: malformed body: %v", entities.ErrInvalidSignature, err)
	}
	dataID := strings.ToLower(string(n.Data.ID))
	if err := verifyMercadoPagoSignature(v.secret, sig, dataID); err != nil {
		v.log.Debug("[payment][webhook] signature mismatch", zap.String("data_id", dataID), zap.Error(err))
		return entities.GatewayEvent{}, err
	}

	out := entities.GatewayEvent{ID: string(n.ID), Type: n.Type, Kind: entities.GatewayEventIgnored}
	if n.Action != "" {
		out.Type = n.Action
	}
	if n.Type != "payment" {
		return out, nil
	}

	paymentID, err := strconv.Atoi(dataID)
	if err != nil {
		return out, fmt.Errorf("mercadopago payment id %q: %w", dataID, err)
	}
	p, err := v.payments.Get(ctx, paymentID)
	if err != nil {
		return out, fmt.Errorf("mercadopago get payment %d: %w", paymentID, err)
	}
	if p.Status != mercadoPagoApproved {
		v.log.Info("[payment][webhook] payment not approved", zap.Int("payment_id", p.ID), zap.String("status", p.Status))
		return out, nil
	}

	out.Kind = entities.GatewayEventPaymentCompleted
	out.PaymentStatus = p.Status
	out.PaymentIntentID = strconv.Itoa(p.ID)
	out.EntryID = p.ExternalReference
	if out.EntryID == "" {
		if s, ok := p.Metadata[entities.MetadataEntryID].(string); ok {
			out.EntryID = s
		}
	}
	return out, nil
}

// verifyMercadoPagoSignature checks "ts=<unix>,v1=<hex>" against
// HMAC-SHA256("id:<data.id>;request-id:<x-request-id>;ts:<ts>;").
func verifyMercadoPagoSignature(secret string, sig entities.WebhookSignature, dataID string) error {
	var ts, v1 string
	for _, part := range strings.Split(sig.Header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(val)
		case "v1":
			v1 = strings.TrimSpace(val)
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed x-signature", entities.ErrInvalidSignature)
	}

	expected := mercadoPagoSignature(secret, mercadoPagoManifest(dataID, sig.RequestID, ts))
	got, err := hex.DecodeString(v1)
	if err != nil || !hmac.Equal(got, expected) {
		return entities.ErrInvalidSignature
	}
	return nil
}

func mercadoPagoManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + dataID + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func mercadoPagoSignature(secret, manifest string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return mac.Sum(nil)
}
