package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"isbnapi/internal/isbn"
)

// Config is the runtime configuration of the API server and CLI.
type Config struct {
	Addr            string
	LogLevel        string
	LogPretty       bool
	AllowedOrigins  []string
	MaxBodyBytes    int64
	EnableHSTS      bool
	ShutdownTimeout time.Duration
	Scheme          isbn.Scheme
}

// Load reads .env files (without overriding the real environment) and then
// resolves every setting from the environment, falling back to defaults.
func Load() (Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetDefault("app_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("max_body_bytes", 1<<20)
	v.SetDefault("enable_hsts", false)
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("scheme_country_width", isbn.DefaultScheme.CountryWidth)
	v.SetDefault("scheme_publisher_width", isbn.DefaultScheme.PublisherWidth)
	v.SetDefault("scheme_group_digit", isbn.DefaultScheme.GroupDigit)
	v.SetDefault("scheme_multiple_stride", isbn.DefaultScheme.MultipleStride)
	v.AutomaticEnv()

	cfg := Config{
		Addr:            v.GetString("app_addr"),
		LogLevel:        v.GetString("log_level"),
		LogPretty:       v.GetBool("log_pretty"),
		AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
		MaxBodyBytes:    v.GetInt64("max_body_bytes"),
		EnableHSTS:      v.GetBool("enable_hsts"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		Scheme: isbn.Scheme{
			CountryWidth:   v.GetInt("scheme_country_width"),
			PublisherWidth: v.GetInt("scheme_publisher_width"),
			GroupDigit:     v.GetInt("scheme_group_digit"),
			MultipleStride: v.GetInt("scheme_multiple_stride"),
		},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: APP_ADDR must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return c.Scheme.Check()
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
