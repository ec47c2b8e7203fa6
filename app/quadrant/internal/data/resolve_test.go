package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkbook_FirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.xlsx")
	third := filepath.Join(dir, "third.xlsx")
	require.NoError(t, os.WriteFile(second, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(third, []byte("x"), 0o644))

	got, err := ResolveWorkbook([]string{filepath.Join(dir, "missing.xlsx"), second, third})
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestResolveWorkbook_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "index.xlsx")
	require.NoError(t, os.Mkdir(sub, 0o755))
	file := filepath.Join(dir, "real.xlsx")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	got, err := ResolveWorkbook([]string{sub, file})
	require.NoError(t, err)
	assert.Equal(t, file, got)
}

func TestResolveWorkbook_NotFoundListsPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.xlsx"), filepath.Join(dir, "b.xlsx")}

	_, err := ResolveWorkbook(paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkbookNotFound)
	for _, p := range paths {
		assert.Contains(t, err.Error(), p)
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, WorkbookName, paths[0])
	assert.Equal(t, DeploymentPath, paths[len(paths)-1])
}
