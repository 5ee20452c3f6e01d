package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "teamflow_payments/docs"
	"teamflow_payments/internal/adapter/cache"
	"teamflow_payments/internal/adapter/http/handlers"
	"teamflow_payments/internal/adapter/http/middleware"
	"teamflow_payments/internal/adapter/persistence/repository"
	"teamflow_payments/internal/infrastructure/auth"
	"teamflow_payments/internal/infrastructure/config"
	"teamflow_payments/internal/infrastructure/database"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/internal/infrastructure/payments"
	"teamflow_payments/internal/usecase"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Checkout      *handlers.CheckoutHandler
	Webhooks      *handlers.WebhookHandler
	FinanceConfig *handlers.FinanceConfigHandler
	Payments      *handlers.PaymentsHandler
}

// Run wires the service and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(log, auth.NewJWTService(cfg.Auth), h)

	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts every route under /v1. Webhooks stay outside the auth group.
func NewRouter(log *zap.Logger, tokens middleware.TokenValidator, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, h.Webhooks)

	authed := v1.Group("", middleware.Auth(tokens, log))
	addPaymentRoutes(authed, h)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, fmt.Errorf("connect dynamodb: %w", err)
	}

	ledgerRepo := repository.NewLedgerDynamoRepository(ddb, cfg.Tables.Ledger)
	configRepo := repository.NewFinanceConfigDynamoRepository(ddb, cfg.Tables.FinanceConfigs)
	profileRepo := repository.NewProfileDynamoRepository(ddb, cfg.Tables.Profiles)

	summaryCache := newSummaryCache(ctx, cfg.Redis, usecase.NewPaymentSummaryLoader(ledgerRepo), log)

	financeUseCase := usecase.NewFinanceConfigUseCase(configRepo, profileRepo, cfg.Payments.Currency, log)
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, profileRepo, financeUseCase, summaryCache, cfg.Payments.Currency, log)

	checkoutUseCase := usecase.NewCheckoutUseCase(ledgerRepo, profileRepo, newCheckoutGateway(cfg, log), usecase.CheckoutOptions{
		Currency:   cfg.Payments.Currency,
		SuccessURL: cfg.Payments.SuccessURL(),
		CancelURL:  cfg.Payments.CancelURL(),
	}, log)

	stripeWebhooks := usecase.NewWebhookUseCase(payments.GatewayStripe,
		payments.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret, log), ledgerRepo, summaryCache, log)

	var mpWebhooks usecase.IWebhookUseCase
	mpVerifier, err := payments.NewMercadoPagoWebhookVerifier(cfg.MercadoPago.AccessToken, cfg.MercadoPago.WebhookSecret, log)
	if err != nil {
		log.Warn("Mercado Pago webhook not configured", zap.Error(err))
	} else {
		mpWebhooks = usecase.NewWebhookUseCase(payments.GatewayMercadoPago, mpVerifier, ledgerRepo, summaryCache, log)
	}

	return Handlers{
		Checkout:      handlers.NewCheckoutHandler(checkoutUseCase, log),
		Webhooks:      handlers.NewWebhookHandler(stripeWebhooks, mpWebhooks, log),
		FinanceConfig: handlers.NewFinanceConfigHandler(financeUseCase, log),
		Payments:      handlers.NewPaymentsHandler(ledgerUseCase, log),
	}, nil
}

func newCheckoutGateway(cfg *config.Config, log *zap.Logger) interfaces.ICheckoutGateway {
	switch cfg.Payments.Provider {
	case config.ProviderMercadoPago:
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.NotificationURL, cfg.Payments.Mock, log)
		if err != nil {
			log.Warn("Mercado Pago gateway not configured", zap.Error(err))
			return nil
		}
		return gw
	default:
		return payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Payments.Mock, log)
	}
}

func newSummaryCache(ctx context.Context, cfg config.RedisConfig, load interfaces.PaymentSummaryLoader, log *zap.Logger) interfaces.IPaymentSummaryCache {
	if cfg.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg)
		if err == nil {
			log.Info("payment summary cache backed by redis", zap.String("addr", cfg.Addr))
			return cache.NewRedisPaymentSummaryCache(client, load, cfg.TTL, log)
		}
		log.Warn("redis unavailable, using in-process summary cache", zap.Error(err))
	}
	return usecase.NewInMemoryPaymentSummaryCache(load, cfg.TTL)
}
