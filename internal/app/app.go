package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/goidioms/internal/config"
	"github.com/vk/goidioms/internal/ctxlog"
	"github.com/vk/goidioms/internal/registry"
)

// App encapsulates the sampler's dependencies and lifecycle: a configured
// logger, the populated sample registry, and the writer samples print to.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	selection string
	skip      map[int]bool
}

// New constructs a fully initialized App: it loads the optional settings
// file, builds the logger, and registers every module into a fresh
// registry. Sample output goes to outW, logs to errW.
//
// Startup failures (unreadable settings, duplicate order keys) panic; the
// entrypoint recovers them into a clean error message. When no modules are
// passed, the compiled-in coreSamples list is used.
func New(outW, errW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	settings := &config.Settings{}
	if cfg.SettingsPath != "" {
		loaded, err := loader.Load(ctxlog.WithLogger(context.Background(), slog.Default()), cfg.SettingsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load settings: %w", err))
		}
		settings = loaded
	}

	// CLI flags win over the settings file, defaults fill the rest.
	settings.Merge(&config.Settings{LogLevel: cfg.LogLevel, LogFormat: cfg.LogFormat})
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	if settings.LogFormat == "" {
		settings.LogFormat = "text"
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, errW)
	logger.Debug("Logger configured.", "level", settings.LogLevel, "format", settings.LogFormat)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreSamples
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All sample modules registered.", "count", reg.Count())

	skip := make(map[int]bool, len(settings.Skip))
	for _, order := range settings.Skip {
		skip[order] = true
	}

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		selection: cfg.Selection,
		skip:      skip,
	}
}

// Registry returns the application's registry. Primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// catalog returns the effective sample list: all registered entries in key
// order, minus any orders the settings file skipped.
func (a *App) catalog() []registry.Entry {
	entries := a.registry.Entries()
	if len(a.skip) == 0 {
		return entries
	}
	visible := entries[:0:0]
	for _, e := range entries {
		if !a.skip[e.Order] {
			visible = append(visible, e)
		}
	}
	return visible
}
