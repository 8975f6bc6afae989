package config

import (
	"context"
	"fmt"
	"slices"
)

// Settings is the unified representation of everything a settings file may
// adjust. Zero values mean "not set"; the app layers these under any values
// the user passed as CLI flags.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// Skip lists order keys of samples hidden from the catalog.
	Skip []int
}

// Loader is the interface for a format-specific settings loader. Load reads
// the file (or every settings file under a directory) at path and returns
// the merged model.
type Loader interface {
	Load(ctx context.Context, path string) (*Settings, error)
}

// Validate rejects values outside the known enumerations. Unset fields are
// valid.
func (s *Settings) Validate() error {
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", s.LogLevel)
	}
	switch s.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", s.LogFormat)
	}
	return nil
}

// Merge overlays over on top of s: scalar fields from over win when set,
// skip lists are unioned.
func (s *Settings) Merge(over *Settings) {
	if over == nil {
		return
	}
	if over.LogLevel != "" {
		s.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		s.LogFormat = over.LogFormat
	}
	for _, order := range over.Skip {
		if !slices.Contains(s.Skip, order) {
			s.Skip = append(s.Skip, order)
		}
	}
}
