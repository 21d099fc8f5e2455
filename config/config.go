package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           int      `mapstructure:"port"`
	GinMode        string   `mapstructure:"gin_mode"`
	AllowedOrigins []string `mapstructure:"-"` // comma-separated in BINGO_ALLOWED_ORIGINS
	PostgresURL    string   `mapstructure:"postgres_url"`
}

// Load reads configuration from BINGO_* environment variables, falling back
// to defaults suitable for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("bingo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3001)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("allowed_origins", "http://localhost:5173")
	v.SetDefault("postgres_url", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.AllowedOrigins = splitOrigins(v.GetString("allowed_origins"))
	return &cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
