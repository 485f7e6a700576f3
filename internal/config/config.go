package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"8000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// CORSConfig holds cross-origin settings applied to every response.
type CORSConfig struct {
	AllowOrigins     []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1,dive,required"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"0" validate:"min=0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; a .env file is picked up by
// importing _ "github.com/joho/godotenv/autoload" in main.
type AppConfig struct {
	AppName        string `env:"APP_NAME" envDefault:"AdGenie Dashboard"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Timezone       string `env:"APP_TIMEZONE" envDefault:"UTC" validate:"required"`
	SwaggerEnabled bool   `env:"SWAGGER_ENABLED" envDefault:"true"`
	SwaggerHost    string `env:"SWAGGER_HOST" validate:"omitempty,hostname_port|hostname"`

	Server ServerConfig
	CORS   CORSConfig
}

// Load reads configuration from environment variables and validates it.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints and that the timezone can be resolved.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr returns the listen address, e.g. 0.0.0.0:8000.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
