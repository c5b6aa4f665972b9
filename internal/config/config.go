// Package config defines the CLI configuration and its loading.
//
// Values come from defaults, then an optional YAML file; command-line flags are
// applied on top by the caller. Environment variables are not consulted.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// MetricsFile, when set, receives run metrics in Prometheus text format.
	MetricsFile string `koanf:"metrics_file"`

	// Overwrite allows replacing an existing report.
	Overwrite bool `koanf:"overwrite"`

	// Verify selects the post-save check: basic or full.
	Verify string `koanf:"verify"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Overwrite: true,
		Verify:    "full",
	}
}
