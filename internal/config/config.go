package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	EnvOutDir        = "ICONGEN_OUT_DIR"
	EnvTextThreshold = "ICONGEN_TEXT_THRESHOLD"
	EnvInstallURL    = "ICONGEN_INSTALL_URL"
	EnvStdioLog      = "ICONGEN_STDIO_LOG"
)

// Config contains settings for one generator run. Flags override these
// values; see main.go.
type Config struct {
	OutDir        string
	TextThreshold int
	InstallURL    string
	StdioLog      string
}

// DefaultConfigFromEnv starts from defaults and applies any ICONGEN_*
// environment variables.
func DefaultConfigFromEnv(defaults Config) (Config, error) {
	cfg := defaults

	if outDir := os.Getenv(EnvOutDir); outDir != "" {
		cfg.OutDir = outDir
	}

	if raw := os.Getenv(EnvTextThreshold); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvTextThreshold, raw, err)
		}
		cfg.TextThreshold = parsed
	}

	if url := os.Getenv(EnvInstallURL); url != "" {
		cfg.InstallURL = url
	}
	if stdioLog := os.Getenv(EnvStdioLog); stdioLog != "" {
		cfg.StdioLog = stdioLog
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the generator cannot run with.
func (cfg Config) Validate() error {
	if cfg.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	if cfg.TextThreshold < 1 {
		return fmt.Errorf("text threshold must be at least 1 (got %d)", cfg.TextThreshold)
	}
	return nil
}
