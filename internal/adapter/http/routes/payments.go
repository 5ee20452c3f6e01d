package routes

import (
	"teamflow_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout      = "/checkout"
	PathWebhooks      = "/webhooks"
	PathPayers        = "/payers/me"
	PathSubjects      = "/subjects"
	PathEvents        = "/events"
	PathLedger        = "/ledger"
	financeConfigPath = "/:event_id/finance-config"
)

// Webhooks accept any method so non-POST deliveries get a 400 instead of a 404.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.Any("/stripe", h.Stripe)
		webhooks.Any("/mercadopago", h.MercadoPago)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathCheckout, h.Checkout.CreateCheckout)

	payers := rg.Group(PathPayers)
	{
		payers.GET("/payments", h.Payments.ListMine)
		payers.GET("/payments/pending", h.Payments.ListMinePending)
		payers.GET("/subjects/:subject_id/summary", h.Payments.SubjectSummary)
	}

	rg.GET(PathSubjects+"/:subject_id/payments", h.Payments.ListForSubject)
	rg.POST(PathLedger+"/plans", h.Payments.CreatePlan)

	finance := rg.Group(PathEvents + financeConfigPath)
	{
		finance.GET("", h.FinanceConfig.GetEffectiveConfig)
		finance.GET("/:owner_id", h.FinanceConfig.GetConfig)
		finance.PUT("/:owner_id", h.FinanceConfig.SaveConfig)
		finance.GET("/:owner_id/installments", h.FinanceConfig.GetInstallments)
	}
}
