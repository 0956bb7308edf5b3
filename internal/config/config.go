package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"domainscout/internal/validation"
)

type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Pipeline   PipelineConfig
	Pricing    PricingConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Prefs      PrefsConfig
	Database   DatabaseConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"1024"`
}

type UpstreamConfig struct {
	Provider string        `env:"UPSTREAM_PROVIDER" envDefault:"dynadot"`
	Timeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"20s"`
	Currency string        `env:"UPSTREAM_CURRENCY" envDefault:"USD"`

	DynadotAPIKey    string `env:"DYNADOT_API_KEY"`
	DynadotEndpoint  string `env:"DYNADOT_ENDPOINT" envDefault:"https://api.dynadot.com/api3.json"`
	DynadotShowPrice bool   `env:"DYNADOT_SHOW_PRICE" envDefault:"true"`

	LoopiaUsername string `env:"LOOPIA_USERNAME"`
	LoopiaPassword string `env:"LOOPIA_PASSWORD"`
	LoopiaEndpoint string `env:"LOOPIA_ENDPOINT" envDefault:"https://api.loopia.se/RPCSERV"`
}

type PipelineConfig struct {
	DefaultRPS   float64       `env:"DEFAULT_RPS" envDefault:"1"`
	MinRPS       float64       `env:"MIN_RPS" envDefault:"0.2"`
	MaxRPS       float64       `env:"MAX_RPS" envDefault:"0"`
	BatchSize    int           `env:"BATCH_SIZE" envDefault:"2"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"5"`
	BackoffBase  time.Duration `env:"BACKOFF_BASE" envDefault:"400ms"`
	BackoffCap   time.Duration `env:"BACKOFF_CAP" envDefault:"10s"`
	StreamBuffer int           `env:"STREAM_BUFFER" envDefault:"16"`
	MaxDomains   int           `env:"MAX_DOMAINS" envDefault:"5000"`
	PreviewLimit int           `env:"PREVIEW_LIMIT" envDefault:"50"`
}

type PricingConfig struct {
	RulesFile string `env:"PRICING_RULES_FILE"`
}

type ValidationConfig struct {
	MaxTLDs            int    `env:"MAX_TLDS" envDefault:"100"`
	MaxKeywordsLength  int    `env:"MAX_KEYWORDS_LENGTH" envDefault:"20000"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1M"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"2"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PrefsConfig struct {
	MaxSizePow2 int `env:"PREFS_CACHE_SIZE_POW2" envDefault:"24"`
	RecentCap   int `env:"PREFS_RECENT_CAP" envDefault:"10"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"domainscout"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
}

type MetricsConfig struct {
	Enabled           bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize        int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval     int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold    int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"500"`
	PrometheusEnabled bool `env:"PROMETHEUS_ENABLED" envDefault:"true"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

// Load reads an optional .env file from the working directory and then
// parses the process environment. Variables already set take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	p := c.Pipeline
	switch {
	case p.BatchSize < 1:
		return fmt.Errorf("BATCH_SIZE must be positive, got %d", p.BatchSize)
	case p.MaxAttempts < 1:
		return fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", p.MaxAttempts)
	case p.MinRPS <= 0:
		return fmt.Errorf("MIN_RPS must be positive, got %v", p.MinRPS)
	case p.MaxRPS != 0 && p.MaxRPS < p.MinRPS:
		return fmt.Errorf("MAX_RPS (%v) is below MIN_RPS (%v)", p.MaxRPS, p.MinRPS)
	case p.BackoffBase <= 0 || p.BackoffCap < p.BackoffBase:
		return fmt.Errorf("invalid backoff window %s..%s", p.BackoffBase, p.BackoffCap)
	case p.MaxDomains < 1:
		return fmt.Errorf("MAX_DOMAINS must be positive, got %d", p.MaxDomains)
	case p.StreamBuffer < 0:
		return fmt.Errorf("STREAM_BUFFER must not be negative, got %d", p.StreamBuffer)
	}

	var endpoint string
	switch c.Upstream.Provider {
	case ProviderDynadot:
		endpoint = c.Upstream.DynadotEndpoint
	case ProviderLoopia:
		endpoint = c.Upstream.LoopiaEndpoint
	default:
		return fmt.Errorf("unknown UPSTREAM_PROVIDER %q", c.Upstream.Provider)
	}
	if err := validation.ValidateEndpoint(endpoint); err != nil {
		return fmt.Errorf("invalid %s endpoint: %w", c.Upstream.Provider, err)
	}
	return nil
}

const (
	ProviderDynadot = "dynadot"
	ProviderLoopia  = "loopia"
)

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
