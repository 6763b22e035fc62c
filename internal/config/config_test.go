package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBridgeConfig(t *testing.T) {
	cfg := DefaultBridgeConfig()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, uint32(4000), cfg.DefaultSims)
}

func TestLoadBridgeConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadBridgeConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBridgeConfig(), cfg)
}

func TestLoadBridgeConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.hcl")
	contents := `
bridge {
  listen_addr  = "127.0.0.1:9090"
  log_level    = "debug"
  default_sims = 6000
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadBridgeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint32(6000), cfg.DefaultSims)
}

func TestLoadBenchConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.hcl")
	contents := `
bench {
  workers = 8
  sims    = 500000
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadBenchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 500000, cfg.Sims)
}
