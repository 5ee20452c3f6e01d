package entities

import "errors"

// Metadata keys attached to every checkout session. The reconciler only trusts
// MetadataEntryID as read back from a verified gateway event.
const (
	MetadataEntryID   = "pago_id"
	MetadataSubjectID = "jugador_id"
	MetadataUserID    = "user_id"
)

var (
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CheckoutSessionRequest is what the initiator asks a gateway to create.
type CheckoutSessionRequest struct {
	EntryID     string
	Description string
	AmountMinor int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the gateway's answer.
type CheckoutSession struct {
	ID          string
	RedirectURL string
}

// GatewayEventKind classifies a verified webhook notification.
type GatewayEventKind int

const (
	GatewayEventIgnored GatewayEventKind = iota
	GatewayEventPaymentCompleted
)

// GatewayEvent is a verified, provider-neutral notification.
type GatewayEvent struct {
	ID              string
	Type            string
	Kind            GatewayEventKind
	EntryID         string
	PaymentStatus   string
	PaymentIntentID string
	SessionID       string
}

// WebhookSignature groups the headers a provider signs a delivery with.
type WebhookSignature struct {
	Header    string
	RequestID string
}
