package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Email       EmailConfig       `yaml:"email"`
	GoogleBooks GoogleBooksConfig `yaml:"google_books"`
	Redis       RedisConfig       `yaml:"redis"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Reading     ReadingConfig     `yaml:"reading"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and OAuth settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"bud"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"15m"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl"    env:"AUTH_REFRESH_TOKEN_TTL"    env-default:"720h"`
	BcryptCost         int           `yaml:"bcrypt_cost"          env:"AUTH_BCRYPT_COST"          env-default:"12"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
}

// GoogleEnabled reports whether Google sign-in credentials are configured.
func (c AuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// EmailConfig holds outgoing mail settings. Driver "log" only writes
// messages to the application log.
type EmailConfig struct {
	Driver          string        `yaml:"driver"           env:"EMAIL_DRIVER"           env-default:"log"`
	From            string        `yaml:"from"             env:"EMAIL_FROM"             env-default:"Bud <no-reply@bud.local>"`
	SMTPHost        string        `yaml:"smtp_host"        env:"EMAIL_SMTP_HOST"`
	SMTPPort        int           `yaml:"smtp_port"        env:"EMAIL_SMTP_PORT"        env-default:"587"`
	SMTPUsername    string        `yaml:"smtp_username"    env:"EMAIL_SMTP_USERNAME"`
	SMTPPassword    string        `yaml:"smtp_password"    env:"EMAIL_SMTP_PASSWORD"`
	VerificationTTL time.Duration `yaml:"verification_ttl" env:"EMAIL_VERIFICATION_TTL" env-default:"24h"`
}

// GoogleBooksConfig holds settings for the Google Books volumes API.
type GoogleBooksConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"GOOGLE_BOOKS_BASE_URL"    env-default:"https://www.googleapis.com/books/v1"`
	APIKey     string        `yaml:"api_key"     env:"GOOGLE_BOOKS_API_KEY"`
	MaxResults int           `yaml:"max_results" env:"GOOGLE_BOOKS_MAX_RESULTS" env-default:"20"`
	Timeout    time.Duration `yaml:"timeout"     env:"GOOGLE_BOOKS_TIMEOUT"     env-default:"10s"`
	CacheTTL   time.Duration `yaml:"cache_ttl"   env:"GOOGLE_BOOKS_CACHE_TTL"   env-default:"1h"`
}

// RedisConfig holds the optional cache connection. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// CatalogConfig holds shared book catalog limits.
type CatalogConfig struct {
	MaxBooksPerUser int `yaml:"max_books_per_user" env:"CATALOG_MAX_BOOKS_PER_USER" env-default:"5"`
	DefaultPageSize int `yaml:"default_page_size"  env:"CATALOG_DEFAULT_PAGE_SIZE"  env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"      env:"CATALOG_MAX_PAGE_SIZE"      env-default:"100"`
}

// ReadingConfig holds reading tracker settings.
type ReadingConfig struct {
	Timezone string `yaml:"timezone" env:"READING_TIMEZONE" env-default:"UTC"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for unauthenticated auth endpoints.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	Register        int           `yaml:"register"         env:"RATE_LIMIT_REGISTER"         env-default:"5"`
	Login           int           `yaml:"login"            env:"RATE_LIMIT_LOGIN"            env-default:"10"`
	Refresh         int           `yaml:"refresh"          env:"RATE_LIMIT_REFRESH"          env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
