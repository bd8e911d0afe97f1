// Package config holds the two host-settable environment variables the
// analyzer driver reads, plus the bounded-wait hardening timeout, following
// the defaults-plus-Validate shape the reference config package uses.
package config

import (
	"fmt"
	"os"
	"time"
)

// AnalyzerConfig configures how the post-generation static-analysis driver
// invokes the external analyzer process.
type AnalyzerConfig struct {
	// WorkDir is the working directory for the analyzer child process.
	WorkDir string

	// Remap is passed through to the analyzer as --solc-remaps.
	Remap string

	// Timeout bounds how long the driver waits for the analyzer to exit
	// before recording an AnalyzerTimeout result. Zero means no bound.
	Timeout time.Duration
}

const (
	envWorkDir = "ANALYZER_WORKDIR"
	envRemap   = "ANALYZER_REMAP"

	defaultRemap   = "@openzeppelin=node_modules/@openzeppelin"
	defaultTimeout = 120 * time.Second
)

// Load reads AnalyzerConfig from the environment, applying the documented
// defaults for anything unset.
func Load() (AnalyzerConfig, error) {
	cfg := AnalyzerConfig{
		WorkDir: os.Getenv(envWorkDir),
		Remap:   os.Getenv(envRemap),
		Timeout: defaultTimeout,
	}
	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return AnalyzerConfig{}, fmt.Errorf("resolving default analyzer working directory: %w", err)
		}
		cfg.WorkDir = wd
	}
	if cfg.Remap == "" {
		cfg.Remap = defaultRemap
	}
	return cfg, cfg.Validate()
}

// Validate checks that WorkDir exists and is a directory.
func (c AnalyzerConfig) Validate() error {
	info, err := os.Stat(c.WorkDir)
	if err != nil {
		return fmt.Errorf("analyzer working directory %q: %w", c.WorkDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("analyzer working directory %q is not a directory", c.WorkDir)
	}
	return nil
}
