package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Sync.Store)
	assert.Equal(t, "uuid", cfg.Sync.IDGenerator)
	assert.Equal(t, "profiles.json", cfg.Sync.ObjectKey)
	assert.Empty(t, cfg.Sync.Inventories)
	assert.True(t, filepath.IsAbs(cfg.Sync.ProfilesPath))
	assert.Contains(t, cfg.Sync.ProfilesPath, home)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
sync:
  inventories:
    - ~/devices.yaml
    - s3://inventories/lab.yaml
  store: database
log:
  level: debug
`), 0o644))
	t.Setenv("SYNC_ID_GENERATOR", "uuidgen")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, "devices.yaml"), "s3://inventories/lab.yaml"}, cfg.Sync.Inventories)
	assert.Equal(t, "database", cfg.Sync.Store)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "uuidgen", cfg.Sync.IDGenerator)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=secret\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SERVER_API_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/profiles.json", filepath.Join(home, "profiles.json")},
		{"/etc/devices.yaml", "/etc/devices.yaml"},
		{"~other/devices.yaml", "~other/devices.yaml"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
