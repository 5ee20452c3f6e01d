package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

// Config holds all service configuration
type Config struct {
	App         AppConfig
	Log         LogConfig
	AWS         AWSConfig
	Tables      TablesConfig
	Auth        AuthConfig
	Payments    PaymentsConfig
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	Redis       RedisConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AWSConfig holds DynamoDB connection settings. Endpoint is set for DynamoDB Local.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TablesConfig struct {
	Ledger         string
	FinanceConfigs string
	Profiles       string
}

// AuthConfig holds the HS256 secret shared with the auth provider.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// PaymentsConfig selects the checkout gateway and the redirect targets.
type PaymentsConfig struct {
	Provider    string
	Currency    string
	BaseURL     string
	SuccessPath string
	CancelPath  string
	Mock        bool
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type MercadoPagoConfig struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Load loads configuration from config.toml and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with TEAMFLOW_ prefix (e.g. TEAMFLOW_STRIPE_SECRET_KEY)
// 2. Plain variables kept for existing deployments (AWS_REGION, DYNAMODB_ENDPOINT, STRIPE_SECRET_KEY, ...)
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TEAMFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("aws.region"),
			Endpoint:        v.GetString("aws.endpoint"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
		},
		Tables: TablesConfig{
			Ledger:         v.GetString("tables.ledger"),
			FinanceConfigs: v.GetString("tables.finance_configs"),
			Profiles:       v.GetString("tables.profiles"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			Issuer:    v.GetString("auth.issuer"),
		},
		Payments: PaymentsConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("payments.provider"))),
			Currency:    strings.ToLower(strings.TrimSpace(v.GetString("payments.currency"))),
			BaseURL:     strings.TrimRight(v.GetString("payments.base_url"), "/"),
			SuccessPath: v.GetString("payments.success_path"),
			CancelPath:  v.GetString("payments.cancel_path"),
			Mock:        isEnabled(v.GetString("payments.mock")),
		},
		Stripe: StripeConfig{
			SecretKey:     v.GetString("stripe.secret_key"),
			WebhookSecret: v.GetString("stripe.webhook_secret"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     v.GetString("mercadopago.access_token"),
			WebhookSecret:   v.GetString("mercadopago.webhook_secret"),
			NotificationURL: v.GetString("mercadopago.notification_url"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindLegacyEnv maps the variable names used before the TEAMFLOW_ prefix existed.
func bindLegacyEnv(v *viper.Viper) {
	legacy := map[string][]string{
		"aws.region":                 {"AWS_REGION"},
		"aws.endpoint":               {"DYNAMODB_ENDPOINT"},
		"aws.access_key_id":          {"AWS_ACCESS_KEY_ID"},
		"aws.secret_access_key":      {"AWS_SECRET_ACCESS_KEY"},
		"auth.jwt_secret":            {"JWT_SECRET"},
		"payments.mock":              {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"stripe.secret_key":          {"STRIPE_SECRET_KEY"},
		"stripe.webhook_secret":      {"STRIPE_WEBHOOK_SECRET"},
		"mercadopago.access_token":   {"MERCADOPAGO_ACCESS_TOKEN"},
		"mercadopago.webhook_secret": {"MERCADOPAGO_WEBHOOK_SECRET"},
		"redis.addr":                 {"REDIS_ADDR"},
	}
	for key, names := range legacy {
		prefixed := "TEAMFLOW_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(append([]string{key, prefixed}, names...)...)
	}
}

func isEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "teamflow-payments"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.AWS.AccessKeyID == "" {
		cfg.AWS.AccessKeyID = "local"
	}
	if cfg.AWS.SecretAccessKey == "" {
		cfg.AWS.SecretAccessKey = "local"
	}
	if cfg.Tables.Ledger == "" {
		cfg.Tables.Ledger = "pagos"
	}
	if cfg.Tables.FinanceConfigs == "" {
		cfg.Tables.FinanceConfigs = "finance_configs"
	}
	if cfg.Tables.Profiles == "" {
		cfg.Tables.Profiles = "profiles"
	}
	if cfg.Payments.Provider == "" {
		cfg.Payments.Provider = ProviderStripe
	}
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "eur"
	}
	if cfg.Payments.BaseURL == "" {
		cfg.Payments.BaseURL = "http://localhost:3000"
	}
	if cfg.Payments.SuccessPath == "" {
		cfg.Payments.SuccessPath = "/pagos?success=true"
	}
	if cfg.Payments.CancelPath == "" {
		cfg.Payments.CancelPath = "/pagos?canceled=true"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = 10 * time.Minute
	}
}

func (c *Config) validate() error {
	var errs []string

	switch c.Payments.Provider {
	case ProviderStripe, ProviderMercadoPago:
	default:
		errs = append(errs, fmt.Sprintf("payments.provider must be %q or %q, got %q", ProviderStripe, ProviderMercadoPago, c.Payments.Provider))
	}
	if len(c.Payments.Currency) != 3 {
		errs = append(errs, "payments.currency must be an ISO 4217 code")
	}
	if c.Redis.DB < 0 {
		errs = append(errs, "redis.db cannot be negative")
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, "redis.ttl cannot be negative")
	}
	if c.IsProduction() {
		if len(c.Auth.JWTSecret) < 32 {
			errs = append(errs, "auth.jwt_secret must be at least 32 characters in production")
		}
		if c.Payments.Mock {
			errs = append(errs, "payments.mock cannot be enabled in production")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SuccessURL is where the gateway sends the payer after a completed checkout.
func (p PaymentsConfig) SuccessURL() string {
	return p.BaseURL + p.SuccessPath
}

// CancelURL is where the gateway sends the payer after an abandoned checkout.
func (p PaymentsConfig) CancelURL() string {
	return p.BaseURL + p.CancelPath
}
