package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"teamflow_payments/internal/adapter/http/dto/request"
	"teamflow_payments/internal/adapter/http/dto/response"
	"teamflow_payments/internal/adapter/http/middleware"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinanceConfigHandler serves per-event finance configuration.
type FinanceConfigHandler struct {
	usecase usecase.IFinanceConfigUseCase
	log     *zap.Logger
}

func NewFinanceConfigHandler(uc usecase.IFinanceConfigUseCase, log *zap.Logger) *FinanceConfigHandler {
	return &FinanceConfigHandler{usecase: uc, log: log}
}

// GetConfig godoc
// @Summary      Finance config saved by one entity for an event
// @Tags         finance-config
// @Produce      json
// @Param        event_id  path      string  true  "event id"
// @Param        owner_id  path      string  true  "owning entity id"
// @Success      200  {object}  response.FinanceConfigResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{event_id}/finance-config/{owner_id} [get]
func (h *FinanceConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.GetConfig(c.Request.Context(), c.Param("event_id"), c.Param("owner_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinanceConfig(cfg))
}

// SaveConfig godoc
// @Summary      Create or replace a finance config
// @Tags         finance-config
// @Accept       json
// @Produce      json
// @Param        event_id  path      string                        true  "event id"
// @Param        owner_id  path      string                        true  "owning entity id"
// @Param        body      body      request.FinanceConfigRequest  true  "config"
// @Success      200  {object}  response.FinanceConfigResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{event_id}/finance-config/{owner_id} [put]
func (h *FinanceConfigHandler) SaveConfig(c *gin.Context) {
	log := logger.FromGin(c, h.log)

	var payload request.FinanceConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Info("[finance-config][handler] invalid payload", zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	saved, err := h.usecase.SaveConfig(c.Request.Context(), middleware.UserID(c), c.Param("event_id"), c.Param("owner_id"), payload.ToInput())
	if err != nil {
		log.Warn("[finance-config][handler] save failed", zap.String("event_id", c.Param("event_id")), zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinanceConfig(saved))
}

// GetEffectiveConfig godoc
// @Summary      Config that applies to a club's registrations
// @Tags         finance-config
// @Produce      json
// @Param        event_id      path   string  true   "event id"
// @Param        club_id       query  string  false  "club id"
// @Param        organizer_id  query  string  false  "organizer id"
// @Success      200  {object}  response.FinanceConfigResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{event_id}/finance-config [get]
func (h *FinanceConfigHandler) GetEffectiveConfig(c *gin.Context) {
	cfg, err := h.usecase.GetEffectiveConfig(c.Request.Context(), c.Param("event_id"), c.Query("club_id"), c.Query("organizer_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinanceConfig(cfg))
}

// GetInstallments godoc
// @Summary      Installment schedule for a count
// @Tags         finance-config
// @Produce      json
// @Param        event_id  path   string  true  "event id"
// @Param        owner_id  path   string  true  "owning entity id"
// @Param        count     query  int     true  "installments"
// @Success      200  {object}  response.InstallmentScheduleResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{event_id}/finance-config/{owner_id}/installments [get]
func (h *FinanceConfigHandler) GetInstallments(c *gin.Context) {
	count, err := strconv.Atoi(strings.TrimSpace(c.Query("count")))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	schedule, err := h.usecase.PlanInstallments(c.Request.Context(), c.Param("event_id"), c.Param("owner_id"), count)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentSchedule(schedule))
}
