// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types and validates them so the service fails fast on a bad
// or missing configuration.
//
// Variables are prefixed with PORTFOLIO_ and nested with a double underscore:
//
//	PORTFOLIO_SERVER__READ_TIMEOUT -> server.read_timeout
//
// The legacy variables SERVICE_MODE and DATABASE_URL are honoured as well.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a `.env` file into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "PORTFOLIO_"
	envNestDelim = "__"

	// ServiceName tags logs and traces.
	ServiceName = "portfolio-backend"
)

// Service modes. Anything else is rejected at load time.
const (
	ModeLocal = "local"
	ModeDev   = "dev"
	ModeStag  = "stag"
	ModeProd  = "prod"
)

// Storage drivers selected by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are injected
// when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the service mode (local, dev, stag or prod).
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local dev stag prod"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// FormMessageRatePerMinute limits POST /form-message per client IP.
	// A negative value disables the limiter.
	FormMessageRatePerMinute int `koanf:"form_message_rate_per_minute"`
}

// DatabaseConfig describes where rows live.
//
// URL wins when set. Otherwise a Postgres DSN is built from Host and friends,
// and when Host is empty too the service falls back to a SQLite file, which
// is only allowed in local mode.
type DatabaseConfig struct {
	URL        string `koanf:"url"`
	Host       string `koanf:"host"`
	Port       int    `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
	SSLMode    string `koanf:"ssl_mode"`
	SQLitePath string `koanf:"sqlite_path"`

	MaxOpenConns    int `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int `koanf:"conn_max_idle_time" validate:"min=0"`
}

// RedisConfig contains Redis connection details ("host:port").
// An empty address runs the service without Redis and without background jobs.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores the Clerk secret key. When set, reading form messages
// requires a Clerk session.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds third-party credentials used by background jobs.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	// OwnerEmail receives a notification for every contact form message.
	OwnerEmail string `koanf:"owner_email" validate:"omitempty,email"`
	OwnerName  string `koanf:"owner_name"`
	// FromEmail is the verified sender address used for outgoing mail.
	FromEmail string `koanf:"from_email" validate:"omitempty,email"`
}

// Driver reports which storage backend this configuration selects.
func (c DatabaseConfig) Driver() string {
	if c.URL != "" || c.Host != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

// DSN returns the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	hostPort := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	// URL-encode the password so characters like ':' or '@' keep the DSN intact.
	encodedPassword := url.QueryEscape(c.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		encodedPassword,
		hostPort,
		c.Name,
		c.SSLMode,
	)
}

// IsLocal reports whether the service runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == ModeLocal
}

// NotificationsEnabled reports whether contact notifications can be delivered.
func (c *Config) NotificationsEnabled() bool {
	return c.Redis.Address != "" && c.Integration.ResendAPIKey != "" && c.Integration.OwnerEmail != ""
}

// LoadConfig loads configuration from the environment, applies defaults,
// validates the result and resolves the storage backend.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Legacy names first so prefixed variables can override them.
	err := k.Load(env.Provider("", ".", func(s string) string {
		switch s {
		case "SERVICE_MODE":
			return "primary.env"
		case "DATABASE_URL":
			return "database.url"
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load legacy env variables: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, envNestDelim, ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Env values are decoded over the observability defaults so a partial
	// override keeps the rest, including boolean switches.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.resolveDatabase(); err != nil {
		return nil, err
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = ModeLocal
	}
	c.Primary.Env = strings.ToLower(strings.TrimSpace(c.Primary.Env))

	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{
			"http://localhost",
			"http://localhost:3000",
			"https://ihh.dev",
		}
	}
	if c.Server.FormMessageRatePerMinute == 0 {
		c.Server.FormMessageRatePerMinute = 6
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "portfolio.db"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}
	if c.Database.ConnMaxIdleTime == 0 {
		c.Database.ConnMaxIdleTime = 300
	}

	if c.Integration.OwnerName == "" {
		c.Integration.OwnerName = "Portfolio"
	}
	if c.Integration.FromEmail == "" {
		c.Integration.FromEmail = "onboarding@resend.dev"
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	} else {
		c.Observability.fillDefaults(DefaultObservabilityConfig())
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}

// resolveDatabase enforces the service-mode rules for picking a store.
func (c *Config) resolveDatabase() error {
	switch c.Database.Driver() {
	case DriverPostgres:
		if c.Database.URL == "" && (c.Database.User == "" || c.Database.Name == "") {
			return fmt.Errorf("database.user and database.name are required when database.host is set")
		}
	case DriverSQLite:
		if !c.IsLocal() {
			return fmt.Errorf("service mode %q requires DATABASE_URL or database.host", c.Primary.Env)
		}
	}
	return nil
}
