package handlers

import (
	"errors"
	"io"
	"net/http"

	"teamflow_payments/internal/adapter/http/dto/request"
	"teamflow_payments/internal/adapter/http/dto/response"
	"teamflow_payments/internal/adapter/http/middleware"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler starts hosted checkouts for the authenticated payer.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	log     *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, log: log}
}

// CreateCheckout godoc
// @Summary      Start a checkout for a pending payment
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "ledger entry"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	log := logger.FromGin(c, h.log)

	userID := middleware.UserID(c)
	if userID == "" {
		writeError(c, errUnauthorized)
		return
	}

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Info("[checkout][handler] invalid payload", zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}
	entryID := payload.ResolveEntryID()

	result, err := h.usecase.Initiate(c.Request.Context(), entryID, userID)
	if err != nil {
		log.Warn("[checkout][handler] initiate failed", zap.String("pago_id", entryID), zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}
