// Package config handles configuration loading and validation for the demo
// binary. Settings come from environment variables with defaults, giving the
// rest of the module type-safe access to configuration while keeping the
// loading mechanics out of business logic.
package config
