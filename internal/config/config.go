package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the project directory when --config is not given.
const DefaultConfigFile = ".elotools.yaml"

// Config holds all elotools configuration.
type Config struct {
	// ProjectRoot is the web project checkout every relative path is resolved against.
	ProjectRoot string `yaml:"project_root"`

	// BNCC converter settings
	BNCC BNCCConfig `yaml:"bncc"`

	// Import validator settings
	Imports ImportsConfig `yaml:"imports"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// BNCCConfig configures the curriculum converter.
type BNCCConfig struct {
	// Source is the markdown document with the **CODE** - description entries.
	Source string `yaml:"source"`
	// Output is the generated JavaScript module.
	Output string `yaml:"output"`
	// ExpectedTotal is the record count `bncc stats` checks against.
	ExpectedTotal int `yaml:"expected_total"`
	// WatchDebounce batches rapid saves in watch mode (e.g. "500ms").
	WatchDebounce string `yaml:"watch_debounce"`
}

// DefaultConfig returns the default configuration.
// Paths reproduce the layout of the ELO web project.
func DefaultConfig() *Config {
	return &Config{
		ProjectRoot: ".",
		BNCC: BNCCConfig{
			Source:        "docs/BNCC.md",
			Output:        "src/app/sala-professor/components/shared/competenciasBNCC.js",
			ExpectedTotal: 642,
			WatchDebounce: "500ms",
		},
		Imports: DefaultImportsConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults, but still honour the environment
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if root := os.Getenv("ELO_PROJECT_ROOT"); root != "" {
		c.ProjectRoot = root
	}
	if level := os.Getenv("ELO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Resolve joins a configured path onto the project root. Absolute paths are kept.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	root := c.ProjectRoot
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BNCC.Source) == "" {
		return fmt.Errorf("bncc.source not configured")
	}
	if strings.TrimSpace(c.BNCC.Output) == "" {
		return fmt.Errorf("bncc.output not configured")
	}
	if c.BNCC.ExpectedTotal < 0 {
		return fmt.Errorf("bncc.expected_total must not be negative: %d", c.BNCC.ExpectedTotal)
	}
	if err := c.Imports.Validate(); err != nil {
		return err
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}
