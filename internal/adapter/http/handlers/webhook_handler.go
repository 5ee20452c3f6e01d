package handlers

import (
	"errors"
	"io"
	"net/http"

	"teamflow_payments/internal/adapter/http/dto/response"
	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/internal/usecase"
	"teamflow_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxWebhookBodyBytes is the largest delivery accepted. Larger bodies get 413,
// never a signature error.
const MaxWebhookBodyBytes = 1 << 20

const (
	headerStripeSignature      = "Stripe-Signature"
	headerMercadoPagoSignature = "x-signature"
	headerMercadoPagoRequestID = "x-request-id"
)

var (
	errMethodNotAllowed   = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Webhooks must be POSTed", http.StatusBadRequest)
	errUnreadableBody     = pkg.NewDomainErrorSimple("INVALID_BODY", "Unreadable request body", http.StatusBadRequest)
	errPayloadTooLarge    = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Webhook payload too large", http.StatusRequestEntityTooLarge)
	errInvalidSignature   = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	errWebhookUnavailable = pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook secret is not configured", http.StatusInternalServerError)
)

// WebhookHandler receives gateway notifications. The body is handed to the
// usecase exactly as received.
type WebhookHandler struct {
	stripe      usecase.IWebhookUseCase
	mercadoPago usecase.IWebhookUseCase
	log         *zap.Logger
}

// NewWebhookHandler accepts nil for a gateway that is not wired; its endpoint
// then answers 500 WEBHOOK_NOT_CONFIGURED.
func NewWebhookHandler(stripe, mercadoPago usecase.IWebhookUseCase, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{stripe: stripe, mercadoPago: mercadoPago, log: log}
}

// Stripe godoc
// @Summary      Stripe webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "signature"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	h.handle(c, h.stripe, entities.WebhookSignature{Header: c.GetHeader(headerStripeSignature)})
}

// MercadoPago godoc
// @Summary      Mercado Pago webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  true  "signature"
// @Param        x-request-id  header    string  true  "request id"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	h.handle(c, h.mercadoPago, entities.WebhookSignature{
		Header:    c.GetHeader(headerMercadoPagoSignature),
		RequestID: c.GetHeader(headerMercadoPagoRequestID),
	})
}

func (h *WebhookHandler) handle(c *gin.Context, uc usecase.IWebhookUseCase, sig entities.WebhookSignature) {
	log := logger.FromGin(c, h.log)

	if c.Request.Method != http.MethodPost {
		writeError(c, errMethodNotAllowed)
		return
	}
	if uc == nil {
		log.Error("[webhook][handler] gateway not wired")
		writeError(c, errWebhookUnavailable)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxWebhookBodyBytes+1))
	if err != nil {
		log.Warn("[webhook][handler] body read failed", zap.Error(err))
		writeError(c, errUnreadableBody)
		return
	}
	if len(payload) > MaxWebhookBodyBytes {
		log.Warn("[webhook][handler] payload too large", zap.Int("limit", MaxWebhookBodyBytes))
		writeError(c, errPayloadTooLarge)
		return
	}

	result, err := uc.Handle(c.Request.Context(), payload, sig)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.FromWebhookResult(result))
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		writeError(c, errInvalidSignature)
	case errors.Is(err, usecase.ErrWebhookNotConfigured):
		writeError(c, errWebhookUnavailable)
	default:
		log.Error("[webhook][handler] processing failed", zap.Error(err))
		writeError(c, pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Webhook processing failed", err, http.StatusInternalServerError))
	}
}
