package config

const (
	EnvPrefix = "LUXE"

	AppEnvDev = "dev"

	EnvAppEnv       = "LUXE_APP_ENV"
	EnvPort         = "LUXE_APP_PORT"
	EnvLogLevel     = "LUXE_LOG_LEVEL"
	EnvLogWarnStack = "LUXE_LOG_WARN_STACK"
	EnvLogFormat    = "LUXE_LOG_FORMAT"

	EnvSessionBackend    = "LUXE_SESSION_BACKEND"
	EnvPersistentBackend = "LUXE_PERSISTENT_BACKEND"
	EnvSessionTTL        = "LUXE_SESSION_TTL"
	EnvAutoMigrate       = "LUXE_AUTO_MIGRATE"

	EnvDBDriver          = "LUXE_DB_DRIVER"
	EnvDBDSN             = "LUXE_DB_DSN"
	EnvDBMaxOpenConns    = "LUXE_DB_MAX_OPEN_CONNS"
	EnvDBMaxIdleConns    = "LUXE_DB_MAX_IDLE_CONNS"
	EnvDBConnMaxLifetime = "LUXE_DB_CONN_MAX_LIFETIME"

	EnvRedisURL          = "LUXE_REDIS_URL"
	EnvRedisAddr         = "LUXE_REDIS_ADDR"
	EnvRedisPassword     = "LUXE_REDIS_PASSWORD"
	EnvRedisDB           = "LUXE_REDIS_DB"
	EnvRedisPoolSize     = "LUXE_REDIS_POOL_SIZE"
	EnvRedisMinIdleConns = "LUXE_REDIS_MIN_IDLE_CONNS"
	EnvRedisDialTimeout  = "LUXE_REDIS_DIAL_TIMEOUT"
	EnvRedisReadTimeout  = "LUXE_REDIS_READ_TIMEOUT"
	EnvRedisWriteTimeout = "LUXE_REDIS_WRITE_TIMEOUT"

	EnvToastTTL      = "LUXE_TOAST_TTL"
	EnvCheckoutDelay = "LUXE_CHECKOUT_DELAY"

	EnvCORSOrigins     = "LUXE_CORS_ORIGINS"
	EnvShutdownTimeout = "LUXE_SHUTDOWN_TIMEOUT"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQL    = "sql"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
