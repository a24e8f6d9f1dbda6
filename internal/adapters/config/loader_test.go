package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockdiff/internal/adapters/config"
	"go.trai.ch/lockdiff/internal/core/domain"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	defaults, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, defaults)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
a:
  rootName: myapp
  exclude:
    - windows-sys
    - winapi
b:
  rootHash: deadbeef
strict: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o600))

	defaults, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	require.NotNil(t, defaults)
	assert.Equal(t, "myapp", defaults.A.RootName)
	assert.Equal(t, []string{"windows-sys", "winapi"}, defaults.A.Exclude)
	assert.Equal(t, "deadbeef", defaults.B.RootHash)
	assert.Empty(t, defaults.B.Exclude)
	assert.True(t, defaults.Strict)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte("a: [unclosed"), 0o600))

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}
