package app

import "fmt"

// Config holds everything an App instance needs to run, as gathered from
// the command line. Empty LogLevel/LogFormat mean "not set on the CLI";
// the settings file and built-in defaults fill them in during New.
type Config struct {
	// Selection is the raw positional argument: empty lists the catalog,
	// "all" runs every sample, otherwise it is parsed as a 1-based index.
	Selection string
	// SettingsPath optionally points at an HCL settings file or a
	// directory of them.
	SettingsPath string

	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and returns it. Enum fields are only checked when
// set; Selection is validated at dispatch time, where the catalog size is
// known.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}
