package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Moderation ModerationConfig `yaml:"moderation"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Auth       AuthConfig       `yaml:"auth"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP. 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis settings for the cache and lock backing stores.
// An empty Addr disables Redis; in-process stores are used instead.
type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
	KeyPrefix    string        `yaml:"key_prefix"    env:"REDIS_KEY_PREFIX"    env-default:"agora"`
}

// ModerationConfig holds moderation queue settings.
type ModerationConfig struct {
	// LockTTL bounds how long a moderator's claim on a QaG survives without
	// a decision. Expiry frees the slot for other moderators.
	LockTTL   time.Duration `yaml:"lock_ttl"   env:"MODERATION_LOCK_TTL"   env-default:"5m"`
	QueueSize int           `yaml:"queue_size" env:"MODERATION_QUEUE_SIZE" env-default:"10"`
}

// ArchiveConfig holds scheduled archival settings.
type ArchiveConfig struct {
	MaxAge   time.Duration `yaml:"max_age"   env:"ARCHIVE_MAX_AGE"   env-default:"8760h"`
	CronSpec string        `yaml:"cron_spec" env:"ARCHIVE_CRON_SPEC" env-default:"0 4 * * *"`
}

// AuthConfig holds JWT settings for the moderation endpoints.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"agora"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"1h"`
}

// CacheConfig holds TTLs for the two cache tiers.
type CacheConfig struct {
	QagListTTL     time.Duration `yaml:"qag_list_ttl"     env:"CACHE_QAG_LIST_TTL"     env-default:"10m"`
	DerivedListTTL time.Duration `yaml:"derived_list_ttl" env:"CACHE_DERIVED_LIST_TTL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
