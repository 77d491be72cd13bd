package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"breakeven/server/internal/validate"
)

type Config struct {
	// HTTP server configuration
	HTTP struct {
		// Port the API listens on
		Port int `env:"HTTP_PORT" envDefault:"5250"`

		// Requests allowed per client IP per minute (0 disables limiting)
		RateLimitPerMinute int `env:"RATE_LIMIT_RPM" envDefault:"120"`

		// Origins allowed by CORS
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	// Database configuration
	Database struct {
		// Path to the sqlite file holding saved scenarios
		Path string `env:"DB_PATH" envDefault:"data/breakeven.db"`
	}

	// Cache configuration
	Cache struct {
		// Redis address; empty keeps the in-process cache
		RedisAddr string `env:"REDIS_ADDR"`

		// Seconds a cached schedule response stays valid
		TTLSeconds int `env:"CACHE_TTL_SECONDS" envDefault:"300"`
	}

	// Telemetry configuration
	Telemetry struct {
		// OTLP collector endpoint; empty keeps spans in-process
		OTELEndpoint string `env:"OTEL_ENDPOINT"`

		// Service name reported on traces
		ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"breakeven-server"`

		// Log level: debug, info, warn or error
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// Presets configuration
	Presets struct {
		// Path to a YAML presets file; empty keeps the built-in default
		Path string `env:"PRESETS_PATH"`
	}

	// Parameter guardrails; zero-valued maxima disable the bound
	Limits struct {
		MaxPropertyValue       float64 `env:"MAX_PROPERTY_VALUE" envDefault:"0"`
		MaxDownPaymentPercent  float64 `env:"MAX_DOWN_PAYMENT_PERCENT" envDefault:"50"`
		MinInterestRatePercent float64 `env:"MIN_INTEREST_RATE_PERCENT" envDefault:"5"`
		MaxInterestRatePercent float64 `env:"MAX_INTEREST_RATE_PERCENT" envDefault:"15"`
		MinTenureYears         int     `env:"MIN_TENURE_YEARS" envDefault:"5"`
		MaxTenureYears         int     `env:"MAX_TENURE_YEARS" envDefault:"30"`
		MaxMonthlyRent         float64 `env:"MAX_MONTHLY_RENT" envDefault:"0"`
		MinRentalYieldPercent  float64 `env:"MIN_RENTAL_YIELD_PERCENT" envDefault:"1"`
		MaxRentalYieldPercent  float64 `env:"MAX_RENTAL_YIELD_PERCENT" envDefault:"10"`
		MaxRentIncreasePercent float64 `env:"MAX_RENT_INCREASE_PERCENT" envDefault:"15"`
		MaxVacancyMonths       int     `env:"MAX_VACANCY_MONTHS" envDefault:"3"`
	}
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidationLimits converts the configured guardrails into checker form.
func (c *Config) ValidationLimits() validate.Limits {
	return validate.Limits{
		MaxPropertyValue:       c.Limits.MaxPropertyValue,
		MaxDownPaymentPercent:  c.Limits.MaxDownPaymentPercent,
		MinInterestRatePercent: c.Limits.MinInterestRatePercent,
		MaxInterestRatePercent: c.Limits.MaxInterestRatePercent,
		MinTenureYears:         c.Limits.MinTenureYears,
		MaxTenureYears:         c.Limits.MaxTenureYears,
		MaxMonthlyRent:         c.Limits.MaxMonthlyRent,
		MinRentalYieldPercent:  c.Limits.MinRentalYieldPercent,
		MaxRentalYieldPercent:  c.Limits.MaxRentalYieldPercent,
		MaxRentIncreasePercent: c.Limits.MaxRentIncreasePercent,
		MaxVacancyMonths:       c.Limits.MaxVacancyMonths,
	}
}
