package config

import (
	"fmt"
	"strings"
	"time"

	"healthathome/internal/domain/quotation"
	"healthathome/pkg/dateonly"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSSessionToken    string `mapstructure:"AWS_SESSION_TOKEN"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	ExamsTable         string `mapstructure:"EXAMS_TABLE"`
	ProformasTable     string `mapstructure:"PROFORMAS_TABLE"`
	PaymentsTable      string `mapstructure:"PAYMENTS_TABLE"`

	RedisAddr              string `mapstructure:"REDIS_ADDR"`
	RedisPassword          string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                int    `mapstructure:"REDIS_DB"`
	CatalogCacheTTLSeconds int    `mapstructure:"CATALOG_CACHE_TTL_SECONDS"`

	MercadoPagoAccessToken    string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	PaymentGatewayMock        bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	AuthDisabled  bool   `mapstructure:"AUTH_DISABLED"`

	AppTimezone string `mapstructure:"APP_TIMEZONE"`
	AppLocale   string `mapstructure:"APP_LOCALE"`

	QuoteRecargoTotal   string `mapstructure:"QUOTE_RECARGO_TOTAL"`
	QuoteCostoDomicilio string `mapstructure:"QUOTE_COSTO_DOMICILIO"`
	QuoteMarkup         string `mapstructure:"QUOTE_MARKUP"`
}

var keys = []string{
	"PORT", "ENV",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN",
	"DYNAMODB_ENDPOINT", "EXAMS_TABLE", "PROFORMAS_TABLE", "PAYMENTS_TABLE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CATALOG_CACHE_TTL_SECONDS",
	"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL", "PAYMENT_GATEWAY_MOCK",
	"AUTH_JWT_SECRET", "AUTH_DISABLED",
	"APP_TIMEZONE", "APP_LOCALE",
	"QUOTE_RECARGO_TOTAL", "QUOTE_COSTO_DOMICILIO", "QUOTE_MARKUP",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("EXAMS_TABLE", "lab_exams")
	v.SetDefault("PROFORMAS_TABLE", "proformas")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_CACHE_TTL_SECONDS", 300)
	v.SetDefault("APP_TIMEZONE", dateonly.DefaultTimezone)
	v.SetDefault("APP_LOCALE", dateonly.DefaultLocale)
	v.SetDefault("QUOTE_RECARGO_TOTAL", quotation.DefaultRecargoTotal.String())
	v.SetDefault("QUOTE_COSTO_DOMICILIO", quotation.DefaultCostoDomicilio.String())
	v.SetDefault("QUOTE_MARKUP", quotation.DefaultMarkup.String())

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Quote returns the pricing policy configured for this deployment.
func (c *Config) Quote() (quotation.Config, error) {
	recargo, err := decimalSetting("QUOTE_RECARGO_TOTAL", c.QuoteRecargoTotal, quotation.DefaultRecargoTotal)
	if err != nil {
		return quotation.Config{}, err
	}
	domicilio, err := decimalSetting("QUOTE_COSTO_DOMICILIO", c.QuoteCostoDomicilio, quotation.DefaultCostoDomicilio)
	if err != nil {
		return quotation.Config{}, err
	}
	markup, err := decimalSetting("QUOTE_MARKUP", c.QuoteMarkup, quotation.DefaultMarkup)
	if err != nil {
		return quotation.Config{}, err
	}
	q := quotation.Config{RecargoTotal: recargo, CostoDomicilio: domicilio, Markup: markup}
	if err := q.Validate(); err != nil {
		return quotation.Config{}, err
	}
	return q, nil
}

// Normalizer builds the date normalizer for APP_TIMEZONE and APP_LOCALE.
func (c *Config) Normalizer() (*dateonly.Normalizer, error) {
	return dateonly.NewForZone(c.AppTimezone, dateonly.WithLocale(c.AppLocale))
}

func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.CatalogCacheTTLSeconds) * time.Second
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ExamsTable == "" || c.ProformasTable == "" || c.PaymentsTable == "" {
		return fmt.Errorf("EXAMS_TABLE, PROFORMAS_TABLE and PAYMENTS_TABLE must be set")
	}
	if c.CatalogCacheTTLSeconds < 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL_SECONDS must not be negative, got %d", c.CatalogCacheTTLSeconds)
	}
	if !c.AuthDisabled && c.AuthJWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required unless AUTH_DISABLED is true")
	}
	if c.AuthDisabled && c.Env == "production" {
		return fmt.Errorf("AUTH_DISABLED cannot be used when ENV=production")
	}
	if !c.PaymentGatewayMock && c.Env == "production" && c.MercadoPagoAccessToken == "" {
		return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN is required in production")
	}
	if _, err := c.Normalizer(); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	if _, err := c.Quote(); err != nil {
		return err
	}
	return nil
}

func decimalSetting(key, raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s is not a number: %q", key, raw)
	}
	return d, nil
}
