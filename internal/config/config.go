package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/asdscreen/internal/logging"
)

const appName = "asdscreen"

// Environment variables consulted by MergeEnv.
const (
	EnvScaler   = "ASDSCREEN_SCALER"
	EnvModel    = "ASDSCREEN_MODEL"
	EnvLogFile  = "ASDSCREEN_LOG_FILE"
	EnvLogLevel = "ASDSCREEN_LOG_LEVEL"
)

// Config holds everything needed to start a screening session.
type Config struct {
	// ScalerPath is the exported feature scaler artifact.
	ScalerPath string `yaml:"scaler"`

	// ClassifierPath is the exported binary classifier artifact.
	ClassifierPath string `yaml:"model"`

	// LogFile receives structured logs. The terminal is never written to.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config pointing at the XDG data and state dirs.
func DefaultConfig() Config {
	data := xdgDir("XDG_DATA_HOME", ".local", "share")
	state := xdgDir("XDG_STATE_HOME", ".local", "state")
	return Config{
		ScalerPath:     filepath.Join(data, appName, "scaler.json"),
		ClassifierPath: filepath.Join(data, appName, "model.json"),
		LogFile:        filepath.Join(state, appName, appName+".log"),
		LogLevel:       "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/asdscreen/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName, "config.yaml")
}

// Load resolves defaults, then the YAML file at path, then the environment.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.MergeFile(path); err != nil {
		return Config{}, err
	}
	cfg.MergeEnv()
	return cfg, nil
}

// MergeFile applies non-empty values from a YAML file.
func (c *Config) MergeFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.merge(fileCfg)
	return nil
}

// MergeEnv applies ASDSCREEN_* environment variables.
func (c *Config) MergeEnv() {
	c.merge(Config{
		ScalerPath:     os.Getenv(EnvScaler),
		ClassifierPath: os.Getenv(EnvModel),
		LogFile:        os.Getenv(EnvLogFile),
		LogLevel:       os.Getenv(EnvLogLevel),
	})
}

// MergeFlags applies command-line overrides. Empty values are ignored.
func (c *Config) MergeFlags(scaler, model, logFile, logLevel string) {
	c.merge(Config{
		ScalerPath:     scaler,
		ClassifierPath: model,
		LogFile:        logFile,
		LogLevel:       logLevel,
	})
}

func (c *Config) merge(o Config) {
	if o.ScalerPath != "" {
		c.ScalerPath = expandHome(o.ScalerPath)
	}
	if o.ClassifierPath != "" {
		c.ClassifierPath = expandHome(o.ClassifierPath)
	}
	if o.LogFile != "" {
		c.LogFile = expandHome(o.LogFile)
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks that both artifacts are named and the log level is known.
func (c Config) Validate() error {
	if c.ScalerPath == "" {
		return fmt.Errorf("scaler artifact path is required (set %s or --scaler)", EnvScaler)
	}
	if c.ClassifierPath == "" {
		return fmt.Errorf("model artifact path is required (set %s or --model)", EnvModel)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// xdgDir returns $env, or ~/<fallback...> when it is unset.
func xdgDir(env string, fallback ...string) string {
	if d := os.Getenv(env); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
