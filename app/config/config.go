package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from INK_-prefixed
// environment variables with sensible defaults for local development.
type Config struct {
	Env      string `mapstructure:"INK_ENV"`
	HTTPAddr string `mapstructure:"INK_HTTP_ADDR"`

	DBPath    string `mapstructure:"INK_DB_PATH"`
	RedisAddr string `mapstructure:"INK_REDIS_ADDR"`

	AdminUsername string `mapstructure:"INK_ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"INK_ADMIN_PASSWORD"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("INK_ENV", "dev")
	v.SetDefault("INK_HTTP_ADDR", ":8080")
	v.SetDefault("INK_DB_PATH", "data/badger")
	v.SetDefault("INK_REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("INK_ADMIN_USERNAME", "admin")
	v.SetDefault("INK_ADMIN_PASSWORD", "changeme")

	// AutomaticEnv alone does not populate Unmarshal; bind each key.
	for _, key := range []string{
		"INK_ENV", "INK_HTTP_ADDR", "INK_DB_PATH",
		"INK_REDIS_ADDR", "INK_ADMIN_USERNAME", "INK_ADMIN_PASSWORD",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
