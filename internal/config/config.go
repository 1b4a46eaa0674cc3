// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// CatalogFile optionally replaces the built-in activity catalog
	// with one loaded from a YAML file.
	CatalogFile string `koanf:"catalog_file"`

	// EnforceCapacity rejects signups to activities whose roster has
	// reached max_participants. Off by default: the field is advisory.
	EnforceCapacity bool `koanf:"enforce_capacity"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8000",
		CatalogFile:     "",
		EnforceCapacity: false,
	}
}
