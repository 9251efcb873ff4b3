package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sessions
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy IPs/CIDRs whose X-Forwarded-For is
	// believed. Empty means the client IP is always the socket peer.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SessionConfig controls the session cookie and the in-memory session store.
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
	MaxSessions  int
}

// RateLimitConfig limits requests per client IP.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedIPs   int
	TrackedIPExpiry time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sessions
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedIPs = viper.GetInt("rate_limit.max_tracked_ips")
	cfg.RateLimit.TrackedIPExpiry = viper.GetDuration("rate_limit.tracked_ip_expiry")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("session.cookie_name", "todo_session")
	viper.SetDefault("session.cookie_secure", false)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_tracked_ips", 1000)
	viper.SetDefault("rate_limit.tracked_ip_expiry", "5m")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if cfg.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
