// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	Environement       string        `mapstructure:"GO_ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	SeedData           bool          `mapstructure:"SEED_DATA"`
	MetricsEnabled     bool          `mapstructure:"METRICS_ENABLED"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitRPS       float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int           `mapstructure:"RATE_LIMIT_BURST"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{})
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 0)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

// Load read configuration from file or environment variables.
//
// A missing app.env is not an error, the defaults and the environment are used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
