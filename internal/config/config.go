package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name       string    `envconfig:"APP_NAME" default:"Rolloff"`
		Port       int       `envconfig:"PORT" default:"8080"`
		BusinessID uuid.UUID `envconfig:"BUSINESS_ID" required:"true"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"rolloff"`
	}

	Server struct {
		Timeout   time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		JWTSecret string        `envconfig:"JWT_SECRET"`
	}

	Pricing struct {
		TaxRate             string `envconfig:"TAX_RATE" default:"0.07"`
		ProcessingFeePct    string `envconfig:"PROCESSING_FEE_PCT" default:"0.03"`
		ProcessingFlatCents int64  `envconfig:"PROCESSING_FEE_FLAT_CENTS" default:"30"`
	}

	MercadoPago struct {
		AccessToken   string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
		WebhookSecret string `envconfig:"MERCADOPAGO_WEBHOOK_SECRET"`
		BackURL       string `envconfig:"CHECKOUT_BACK_URL" default:"https://example.com/checkout/done"`
	}

	Mailer struct {
		URL   string `envconfig:"MAILER_URL"`
		Token string `envconfig:"MAILER_TOKEN"`
		From  string `envconfig:"MAILER_FROM" default:"billing@example.com"`
	}

	Documents struct {
		URL   string `envconfig:"DOCUMENTS_URL"`
		Token string `envconfig:"DOCUMENTS_TOKEN"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// TaxRate parses the configured tax rate, e.g. "0.07" for 7%.
func (c *Config) TaxRate() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Pricing.TaxRate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing TAX_RATE: %w", err)
	}

	return d, nil
}

// ProcessingFeePct parses the configured processing fee percentage.
func (c *Config) ProcessingFeePct() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Pricing.ProcessingFeePct)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing PROCESSING_FEE_PCT: %w", err)
	}

	return d, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
