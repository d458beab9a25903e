package config

// Config holds all settings for the demo binary.
// It groups settings by concern so each component receives only the section
// it needs.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Demo    DemoConfig    `mapstructure:"demo" validate:"required"`
}

// LoggingConfig contains the structured-logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// DemoConfig contains the parameters fed to the demo service operations.
type DemoConfig struct {
	Email    string `mapstructure:"email" validate:"required,email"`
	Password string `mapstructure:"password" validate:"required,min=12,max=72"`
}
