package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables, applying defaults for
// anything unset. Environment variables use the SERVICEKIT_ prefix with
// underscores separating sections, e.g. SERVICEKIT_LOGGING_LEVEL.
// Returns a validated Config or an error when loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the demo runnable with no environment at all. They also
	// register the keys so AutomaticEnv can resolve them during Unmarshal.
	v.SetDefault("logging.level", "info")
	v.SetDefault("demo.email", "ada@example.com")
	v.SetDefault("demo.password", "demo-password-123")

	v.SetEnvPrefix("SERVICEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
