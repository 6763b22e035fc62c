// Package config loads the optional HCL configuration file consumed by
// the bridge and benchmarking entry points. The solver package itself
// reads no configuration and no environment variables — this is ambient
// glue for the surrounding processes only, grounded on the teacher's
// internal/server/config.go.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BridgeConfig configures cmd/serve, the WebSocket host-runtime bridge.
type BridgeConfig struct {
	ListenAddr  string `hcl:"listen_addr,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	DefaultSims uint32 `hcl:"default_sims,optional"`
}

// BenchConfig configures cmd/bench, the equity-simulation load generator.
type BenchConfig struct {
	Workers  int    `hcl:"workers,optional"`
	Sims     int    `hcl:"sims,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Root is the top-level shape of the HCL config file, with an optional
// block for each entry point that reads configuration.
type Root struct {
	Bridge *BridgeConfig `hcl:"bridge,block"`
	Bench  *BenchConfig  `hcl:"bench,block"`
}

// DefaultBridgeConfig returns sane defaults, used whenever no config file
// is supplied.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		ListenAddr:  ":8080",
		LogLevel:    "info",
		DefaultSims: 4000,
	}
}

// DefaultBenchConfig returns sane defaults for cmd/bench.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Workers:  4,
		Sims:     100000,
		LogLevel: "info",
	}
}

// Load parses an HCL file at path into Root. Missing optional blocks are
// left nil; callers should fall back to the Default*Config functions.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
	}

	var root Root
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
	}

	return &root, nil
}

// LoadBridgeConfig loads cmd/serve's configuration, falling back to
// defaults for any field left unset, or entirely when path is empty or
// the file does not contain a bridge block.
func LoadBridgeConfig(path string) (BridgeConfig, error) {
	cfg := DefaultBridgeConfig()
	if path == "" {
		return cfg, nil
	}

	root, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if root.Bridge == nil {
		return cfg, nil
	}

	if root.Bridge.ListenAddr != "" {
		cfg.ListenAddr = root.Bridge.ListenAddr
	}
	if root.Bridge.LogLevel != "" {
		cfg.LogLevel = root.Bridge.LogLevel
	}
	if root.Bridge.DefaultSims != 0 {
		cfg.DefaultSims = root.Bridge.DefaultSims
	}
	return cfg, nil
}

// LoadBenchConfig loads cmd/bench's configuration with the same
// fallback-to-default behaviour as LoadBridgeConfig.
func LoadBenchConfig(path string) (BenchConfig, error) {
	cfg := DefaultBenchConfig()
	if path == "" {
		return cfg, nil
	}

	root, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if root.Bench == nil {
		return cfg, nil
	}

	if root.Bench.Workers != 0 {
		cfg.Workers = root.Bench.Workers
	}
	if root.Bench.Sims != 0 {
		cfg.Sims = root.Bench.Sims
	}
	if root.Bench.LogLevel != "" {
		cfg.LogLevel = root.Bench.LogLevel
	}
	return cfg, nil
}
