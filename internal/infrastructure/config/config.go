package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server     ServerConfig
	Backend    BackendConfig
	ImageProxy ImageProxyConfig
	JWT        JWTConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	S3         S3Config
	SMTP       SMTPConfig
	Booking    BookingConfig
	Log        LogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

// BackendConfig points at the upstream booking/marketplace REST API. Every
// outbound call is single-attempt and bounded by one of the timeouts below.
type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"BACKEND_REQUEST_TIMEOUT" default:"15s"`
	BookingTimeout time.Duration `envconfig:"BACKEND_BOOKING_TIMEOUT" default:"10s"`
	MaxRedirects   int           `envconfig:"BACKEND_MAX_REDIRECTS" default:"3"`
}

// ImageProxyConfig holds the secret material for signing image-proxy URLs.
// Key and salt are hex strings decoded once at startup; the process refuses
// to start when they are absent or malformed.
type ImageProxyConfig struct {
	Key     string `envconfig:"IMAGE_PROXY_KEY" required:"true"`
	Salt    string `envconfig:"IMAGE_PROXY_SALT" required:"true"`
	BaseURL string `envconfig:"IMAGE_PROXY_URL" required:"true"`
}

type JWTConfig struct {
	SecretKey string `envconfig:"JWT_SECRET_KEY" required:"true"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"auto"`
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
}

type SMTPConfig struct {
	Host       string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port       int    `envconfig:"SMTP_PORT" default:"465"`
	Username   string `envconfig:"SMTP_USERNAME"`
	Password   string `envconfig:"SMTP_PASSWORD"`
	From       string `envconfig:"SMTP_FROM"`
	AppBaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:5173"`
}

// Configured reports whether the mailer has credentials. Subscription signups
// still succeed without them; only the confirmation mail is skipped.
func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

type BookingConfig struct {
	// Timezone the customer-facing date and time fields are interpreted in
	// before conversion to UTC for the scheduling backend.
	Timezone        string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kolkata"`
	DefaultDuration int    `envconfig:"BOOKING_DEFAULT_DURATION_MIN" default:"30"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
