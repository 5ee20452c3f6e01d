package main

import (
	"log"

	"teamflow_payments/internal/adapter/http/routes"
	"teamflow_payments/internal/infrastructure/config"
	"teamflow_payments/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           TeamFlow Payments API
// @version         1.0
// @description     Finance configs, payment ledger, hosted checkout and gateway webhooks for TeamFlow.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLog, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLog.Sync() //nolint:errcheck

	zapLog.Info("starting service", zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))
	if err := routes.Run(cfg, zapLog); err != nil {
		zapLog.Fatal("service stopped", zap.Error(err))
	}
}
