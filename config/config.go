// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DevJWTSecret = "shadowbox-dev-secret"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv           string   `env:"APP_ENV" envDefault:"development"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"INFO"`
	HTTPPort         int      `env:"HTTP_PORT" envDefault:"8080"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	RateLimitEnabled bool     `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	PrometheusPort   int      `env:"PROMETHEUS_PORT" envDefault:"9090"`

	Database Database `envPrefix:"DB_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Storage  Storage  `envPrefix:"MINIO_"`

	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`
	MediaURLExpiry time.Duration `env:"MEDIA_URL_EXPIRY" envDefault:"1h"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// URL takes precedence over the individual postgres fields.
	URL      string `env:"URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Name     string `env:"NAME" envDefault:"shadowbox"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	// SQLite file path.
	File string `env:"DATABASE" envDefault:"shadowbox.db"`
}

type JWT struct {
	Secret string        `env:"SECRET" envDefault:"shadowbox-dev-secret"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
	Issuer string        `env:"ISSUER" envDefault:"shadowbox"`
}

type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"shadowbox-media"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// DATABASE_URL is the conventional name and is read without the DB_ prefix.
	if cfg.Database.URL == "" {
		if url, ok := lookupDatabaseURL(); ok {
			cfg.Database.URL = url
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func lookupDatabaseURL() (string, bool) {
	var wrapper struct {
		URL string `env:"DATABASE_URL"`
	}
	if err := env.Parse(&wrapper); err != nil || wrapper.URL == "" {
		return "", false
	}
	return wrapper.URL, true
}

func (c *Config) Validate() error {
	var errs []error

	if c.IsProduction() && (c.JWT.Secret == DevJWTSecret || c.JWT.Secret == "") {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if len(c.JWT.Secret) == 0 {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}
	for _, origin := range c.CORSAllowOrigins {
		if origin == "*" {
			errs = append(errs, errors.New("CORS_ALLOW_ORIGINS cannot be * because session cookies are sent with credentials"))
		}
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST %d out of range 4-31", c.BcryptCost))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// PostgresDSN returns DATABASE_URL or a DSN assembled from the DB_* fields.
func (d Database) PostgresDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

func (s Storage) Enabled() bool {
	return s.Endpoint != ""
}
