package handlers

import (
	"net/http"
	"strconv"

	"teamflow_payments/internal/adapter/http/dto/request"
	"teamflow_payments/internal/adapter/http/dto/response"
	"teamflow_payments/internal/adapter/http/middleware"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentsHandler serves ledger views and plan-based ledger creation.
type PaymentsHandler struct {
	usecase usecase.ILedgerUseCase
	log     *zap.Logger
}

func NewPaymentsHandler(uc usecase.ILedgerUseCase, log *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{usecase: uc, log: log}
}

func (h *PaymentsHandler) payerID(c *gin.Context) (string, bool) {
	payerID, err := h.usecase.PayerForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return "", false
	}
	return payerID, true
}

// ListMine godoc
// @Summary      Caller's payments grouped by status and player
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.PayerPaymentsResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payers/me/payments [get]
func (h *PaymentsHandler) ListMine(c *gin.Context) {
	payerID, ok := h.payerID(c)
	if !ok {
		return
	}
	entries, err := h.usecase.ListForPayer(c.Request.Context(), payerID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayerLedger(entries))
}

// ListMinePending godoc
// @Summary      Caller's pending payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}   response.LedgerEntryResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payers/me/payments/pending [get]
func (h *PaymentsHandler) ListMinePending(c *gin.Context) {
	payerID, ok := h.payerID(c)
	if !ok {
		return
	}
	entries, err := h.usecase.ListPending(c.Request.Context(), payerID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerEntries(entries))
}

// SubjectSummary godoc
// @Summary      Cached payment summary for one of the caller's players
// @Tags         payments
// @Produce      json
// @Param        subject_id  path   string  true   "player id"
// @Param        refresh     query  bool    false  "recompute"
// @Success      200  {object}  response.PaymentSummaryResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payers/me/subjects/{subject_id}/summary [get]
func (h *PaymentsHandler) SubjectSummary(c *gin.Context) {
	payerID, ok := h.payerID(c)
	if !ok {
		return
	}
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

	summary, updated, err := h.usecase.SubjectSummary(c.Request.Context(), payerID, c.Param("subject_id"), refresh)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary, updated))
}

// ListForSubject godoc
// @Summary      Every payment recorded for a player (administrators)
// @Tags         payments
// @Produce      json
// @Param        subject_id  path  string  true  "player id"
// @Success      200  {array}   response.LedgerEntryResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /subjects/{subject_id}/payments [get]
func (h *PaymentsHandler) ListForSubject(c *gin.Context) {
	entries, err := h.usecase.ListForSubject(c.Request.Context(), middleware.UserID(c), c.Param("subject_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerEntries(entries))
}

// CreatePlan godoc
// @Summary      Create ledger entries from an event's finance plan
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePlanRequest  true  "plan"
// @Success      201   {array}   response.LedgerEntryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ledger/plans [post]
func (h *PaymentsHandler) CreatePlan(c *gin.Context) {
	log := logger.FromGin(c, h.log)

	var payload request.CreatePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Info("[ledger][handler] invalid payload", zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	created, err := h.usecase.CreateFromPlan(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		log.Warn("[ledger][handler] create plan failed", zap.String("event_id", in.EventID), zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLedgerEntries(created))
}
