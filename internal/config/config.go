package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	TokenTTL                   Duration `toml:"token_ttl"`
	AuthRateLimitAllowedPerMin int      `toml:"auth_rate_limit_allowed_per_min"`
	CorsAllowedOrigins         []string `toml:"cors_allowed_origins"`

	// ai providers
	AIRateLimitAllowedPerMin int      `toml:"ai_rate_limit_allowed_per_min"`
	AIProviderTimeout        Duration `toml:"ai_provider_timeout"`
	AICacheTTL               Duration `toml:"ai_cache_ttl"`
	GeminiModel              string   `toml:"gemini_model"`
	GeminiEndpoint           string   `toml:"gemini_endpoint"`
	GroqModel                string   `toml:"groq_model"`
	GroqBaseURL              string   `toml:"groq_base_url"`

	// water
	WaterDailyGoal float64 `toml:"water_daily_goal"`
}

// Duration lets TOML values like "20s" or "168h" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.TokenTTL.Duration == 0 {
		// 10080 minutes
		c.TokenTTL.Duration = 7 * 24 * time.Hour
	}
	if c.AuthRateLimitAllowedPerMin == 0 {
		c.AuthRateLimitAllowedPerMin = 10
	}
	if c.AIRateLimitAllowedPerMin == 0 {
		c.AIRateLimitAllowedPerMin = 30
	}
	if c.AIProviderTimeout.Duration == 0 {
		c.AIProviderTimeout.Duration = 20 * time.Second
	}
	if c.AICacheTTL.Duration == 0 {
		c.AICacheTTL.Duration = time.Hour
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-1.5-flash"
	}
	if c.GroqModel == "" {
		c.GroqModel = "llama-3.3-70b-versatile"
	}
	if c.GroqBaseURL == "" {
		c.GroqBaseURL = "https://api.groq.com/openai"
	}
	if c.WaterDailyGoal == 0 {
		c.WaterDailyGoal = 3.0
	}
}
