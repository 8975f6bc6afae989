package hclconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/goidioms/internal/config"
	"github.com/vk/goidioms/internal/ctxlog"
	"github.com/vk/goidioms/internal/fsutil"
)

// settingsFile mirrors the on-disk schema: a single optional settings block.
type settingsFile struct {
	Settings *settingsBlock `hcl:"settings,block"`
}

type settingsBlock struct {
	LogLevel  *string `hcl:"log_level"`
	LogFormat *string `hcl:"log_format"`
	Skip      []int   `hcl:"skip,optional"`
}

// Loader reads sampler settings from HCL files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the settings file at path. When path is a directory, every
// .hcl file under it is loaded in lexicographic order and merged, later
// files overriding earlier ones.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("settings path %s: %w", path, err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindByExt(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("walking settings directory %s: %w", path, err)
		}
		if len(paths) == 0 {
			logger.Warn("No .hcl settings files found in directory.", "path", path)
		}
	}

	evalCtx := envEvalContext()
	merged := &config.Settings{}
	for _, filePath := range paths {
		settings, err := l.loadFile(filePath, evalCtx)
		if err != nil {
			return nil, err
		}
		merged.Merge(settings)
		logger.Debug("Loaded settings file.", "file", filePath)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (l *Loader) loadFile(path string, evalCtx *hcl.EvalContext) (*config.Settings, error) {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var file settingsFile
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	if file.Settings == nil {
		return &config.Settings{}, nil
	}

	settings := &config.Settings{Skip: file.Settings.Skip}
	if file.Settings.LogLevel != nil {
		settings.LogLevel = strings.ToLower(*file.Settings.LogLevel)
	}
	if file.Settings.LogFormat != nil {
		settings.LogFormat = strings.ToLower(*file.Settings.LogFormat)
	}
	return settings, nil
}

// envEvalContext exposes the process environment as an env object so
// settings files can write expressions like env.HOME. Referencing a
// variable that is not set in the environment is a decode error.
func envEvalContext() *hcl.EvalContext {
	vals := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vals[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vals)},
	}
}
