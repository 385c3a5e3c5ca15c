package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

type Config struct {
	Port      string        `env:"PORT,            default=8080"`
	Env       string        `env:"ENV,             default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL,  default=24h" validate:"gt=0"`
	LogLevel  string        `env:"LOG_LEVEL,       default=info" validate:"oneof=trace debug info warn error"`

	DPD     DPDConfig
	Pickup  PickupConfig
	Gateway GatewayConfig
	Events  EventsConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// DPDConfig holds both credential sets; Sandbox selects which one is active.
type DPDConfig struct {
	Sandbox          bool   `env:"DPD_SANDBOX,           default=false"`
	Username         string `env:"DPD_API_USERNAME"`
	Password         string `env:"DPD_API_PASSWORD"`
	FID              string `env:"DPD_API_FID"`
	SandboxUsername  string `env:"DPD_SANDBOX_API_USERNAME"`
	SandboxPassword  string `env:"DPD_SANDBOX_API_PASSWORD"`
	SandboxFID       string `env:"DPD_SANDBOX_API_FID"`
	InfoChannel      string `env:"DPD_INFO_CHANNEL,      default=clientChannel"`
	GenerationPolicy string `env:"DPD_GENERATION_POLICY, default=STOP_ON_FIRST_ERROR"`
}

// PickupConfig is the optional default sender address.
type PickupConfig struct {
	Name        string `env:"DPD_PICKUP_NAME"`
	Company     string `env:"DPD_PICKUP_COMPANY"`
	Address     string `env:"DPD_PICKUP_ADDRESS"`
	City        string `env:"DPD_PICKUP_CITY"`
	PostalCode  string `env:"DPD_PICKUP_POSTAL_CODE"`
	CountryCode string `env:"DPD_PICKUP_COUNTRY_CODE, default=PL"`
	Email       string `env:"DPD_PICKUP_EMAIL"`
	Phone       string `env:"DPD_PICKUP_PHONE"`
	FID         string `env:"DPD_PICKUP_FID"`
}

type GatewayConfig struct {
	URL     string        `env:"DPD_GATEWAY_URL, default=http://localhost:8090/dpd" validate:"required,url"`
	Timeout time.Duration `env:"DPD_GATEWAY_TIMEOUT, default=30s" validate:"gt=0"`
}

type EventsConfig struct {
	Enabled  bool          `env:"EVENTS_PUMP_ENABLED,  default=false"`
	Workers  int           `env:"EVENTS_WORKERS,       default=8" validate:"min=1,max=256"`
	Interval time.Duration `env:"EVENTS_POLL_INTERVAL, default=30s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dpd_compiler"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// checks the struct-level constraints.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := validation.NewStructValidator().Validate(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Settings converts the configuration into request-context settings.
func (c *Config) Settings() service.Settings {
	env := domain.EnvProduction
	if c.DPD.Sandbox {
		env = domain.EnvSandbox
	}

	s := service.Settings{
		Environment: env,
		Production: service.Credentials{
			Username: c.DPD.Username,
			Password: c.DPD.Password,
			FID:      c.DPD.FID,
		},
		Sandbox: service.Credentials{
			Username: c.DPD.SandboxUsername,
			Password: c.DPD.SandboxPassword,
			FID:      c.DPD.SandboxFID,
		},
		InfoChannel: c.DPD.InfoChannel,
		Policy:      domain.GenerationPolicy(c.DPD.GenerationPolicy),
	}

	pickup := domain.AddressDocument{
		Name:       c.Pickup.Name,
		Company:    c.Pickup.Company,
		Address:    c.Pickup.Address,
		City:       c.Pickup.City,
		PostalCode: validation.StripHyphens(c.Pickup.PostalCode),
		Email:      c.Pickup.Email,
		Phone:      c.Pickup.Phone,
		FID:        c.Pickup.FID,
	}
	// A country code alone is not an address.
	if !pickup.IsZero() {
		pickup.CountryCode = c.Pickup.CountryCode
		s.Pickup = &pickup
	}
	return s
}
