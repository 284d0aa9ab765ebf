package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	Timers  TimersConfig
	HTTP    HTTPConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUXE_APP_ENV" required:"true"`
	Port         string `envconfig:"LUXE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LUXE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUXE_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"LUXE_LOG_FORMAT"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// LogFormatOrDefault falls back to console output in dev and json elsewhere.
func (a AppConfig) LogFormatOrDefault() string {
	if f := strings.TrimSpace(a.LogFormat); f != "" {
		return f
	}
	if a.IsDev() {
		return "console"
	}
	return "json"
}

// StorageConfig picks the backends behind the two durable key-value scopes.
type StorageConfig struct {
	SessionBackend    string        `envconfig:"LUXE_SESSION_BACKEND" default:"memory"`
	PersistentBackend string        `envconfig:"LUXE_PERSISTENT_BACKEND" default:"memory"`
	SessionTTL        time.Duration `envconfig:"LUXE_SESSION_TTL" default:"24h"`
	AutoMigrate       bool          `envconfig:"LUXE_AUTO_MIGRATE" default:"true"`
}

type DBConfig struct {
	Driver string `envconfig:"LUXE_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"LUXE_DB_DSN" default:"file:luxethread.db?cache=shared"`

	MaxOpenConns    int           `envconfig:"LUXE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"LUXE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"LUXE_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUXE_REDIS_URL"`
	Address      string        `envconfig:"LUXE_REDIS_ADDR"`
	Password     string        `envconfig:"LUXE_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUXE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUXE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUXE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUXE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUXE_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"LUXE_REDIS_WRITE_TIMEOUT" default:"3s"`
}

// TimersConfig holds the two scheduled delays of the storefront.
type TimersConfig struct {
	ToastTTL      time.Duration `envconfig:"LUXE_TOAST_TTL" default:"3s"`
	CheckoutDelay time.Duration `envconfig:"LUXE_CHECKOUT_DELAY" default:"1500ms"`
}

type HTTPConfig struct {
	CORSOrigins     []string      `envconfig:"LUXE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ShutdownTimeout time.Duration `envconfig:"LUXE_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (c *Config) validate() error {
	c.Storage.SessionBackend = strings.ToLower(strings.TrimSpace(c.Storage.SessionBackend))
	c.Storage.PersistentBackend = strings.ToLower(strings.TrimSpace(c.Storage.PersistentBackend))
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))

	switch c.Storage.SessionBackend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("%s=redis requires %s or %s", EnvSessionBackend, EnvRedisURL, EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvSessionBackend, c.Storage.SessionBackend)
	}

	switch c.Storage.PersistentBackend {
	case BackendMemory:
	case BackendSQL:
		if c.DB.Driver != DriverSQLite && c.DB.Driver != DriverPostgres {
			return fmt.Errorf("unsupported %s %q", EnvDBDriver, c.DB.Driver)
		}
		if c.DB.DSN == "" {
			return fmt.Errorf("%s=sql requires %s", EnvPersistentBackend, EnvDBDSN)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvPersistentBackend, c.Storage.PersistentBackend)
	}

	if c.Timers.ToastTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvToastTTL)
	}
	if c.Timers.CheckoutDelay < 0 {
		return fmt.Errorf("%s must not be negative", EnvCheckoutDelay)
	}
	return nil
}
