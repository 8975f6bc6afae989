package hclconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, t.TempDir(), "settings.hcl", `
		settings {
			log_level  = "debug"
			log_format = "json"
			skip       = [3, 7]
		}
	`)

	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, []int{3, 7}, settings.Skip)
}

func TestLoad_EmptyBlockAndMissingBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSettings(t, dir, "empty.hcl", `settings {}`)
	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, settings.LogLevel)
	assert.Empty(t, settings.Skip)

	path = writeSettings(t, dir, "none.hcl", ``)
	settings, err = NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, settings.LogFormat)
}

func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("SAMPLER_TEST_LEVEL", "warn")

	path := writeSettings(t, t.TempDir(), "settings.hcl", `
		settings {
			log_level = env.SAMPLER_TEST_LEVEL
		}
	`)

	settings, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", settings.LogLevel)
}

func TestLoad_DirectoryMergesInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSettings(t, dir, "10-base.hcl", `
		settings {
			log_level = "info"
			skip      = [2]
		}
	`)
	writeSettings(t, dir, "20-override.hcl", `
		settings {
			log_level = "error"
			skip      = [2, 5]
		}
	`)

	settings, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "error", settings.LogLevel, "later file wins")
	assert.ElementsMatch(t, []int{2, 5}, settings.Skip, "skip lists union without duplicates")
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "absent.hcl"))
		require.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		path := writeSettings(t, dir, "broken.hcl", `settings { log_level = `)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid enum value", func(t *testing.T) {
		t.Parallel()
		path := writeSettings(t, dir, "bad-level.hcl", `
			settings {
				log_level = "loud"
			}
		`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
