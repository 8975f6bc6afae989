package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByExt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	files, err := FindByExt(dir, ".hcl")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0], "results are sorted")
	assert.Equal(t, filepath.Join(dir, "b.hcl"), files[1])
	assert.Equal(t, filepath.Join(dir, "nested", "c.hcl"), files[2])
}

func TestFindByExt_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindByExt(filepath.Join(t.TempDir(), "absent"), ".hcl")
	require.Error(t, err)
}
