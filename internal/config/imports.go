package config

import (
	"fmt"
	"path"
	"strings"
)

// ImportsConfig controls the relative-import validators.
type ImportsConfig struct {
	// DepthRoot is the source root expected depths are measured from.
	DepthRoot string `yaml:"depth_root"`
	// ScanRoot is the subtree whose files are validated.
	ScanRoot string `yaml:"scan_root"`
	// IgnorePatterns skips matching paths/dirs (relative to ScanRoot).
	// Supports simple dir names (e.g., "node_modules") and glob patterns (e.g., "build/*").
	IgnorePatterns []string `yaml:"ignore_patterns"`

	Resources ResourceRuleConfig `yaml:"resources"`
	Hook      HookRuleConfig     `yaml:"hook"`
}

// ResourceRuleConfig configures the full validator.
type ResourceRuleConfig struct {
	Extensions []string `yaml:"extensions"`
	// Names are checked in order; the first one preceded by a ../ run decides.
	Names []string `yaml:"names"`
}

// HookRuleConfig configures the targeted validator for a single hook import.
type HookRuleConfig struct {
	Extensions []string `yaml:"extensions"`
	Symbol     string   `yaml:"symbol"`
	// Dir is the directory under DepthRoot the symbol lives in.
	Dir string `yaml:"dir"`
}

// DefaultImportsConfig returns the defaults for the ELO source tree.
func DefaultImportsConfig() ImportsConfig {
	return ImportsConfig{
		DepthRoot: "src",
		ScanRoot:  "src/app",
		IgnorePatterns: []string{
			".git",
			".next",
			"node_modules",
			"dist",
			"build",
			".cache",
		},
		Resources: ResourceRuleConfig{
			Extensions: []string{"*.js*"},
			Names:      []string{"hooks", "context", "components", "services", "utils"},
		},
		Hook: HookRuleConfig{
			Extensions: []string{"*.jsx"},
			Symbol:     "useSchoolDatabase",
			Dir:        "hooks",
		},
	}
}

// Validate checks the import validator settings.
func (c *ImportsConfig) Validate() error {
	if strings.TrimSpace(c.DepthRoot) == "" {
		return fmt.Errorf("imports.depth_root not configured")
	}
	if strings.TrimSpace(c.ScanRoot) == "" {
		return fmt.Errorf("imports.scan_root not configured")
	}
	for _, globs := range [][]string{c.Resources.Extensions, c.Hook.Extensions} {
		if len(globs) == 0 {
			return fmt.Errorf("imports: extension globs must not be empty")
		}
		for _, g := range globs {
			if _, err := path.Match(g, ""); err != nil {
				return fmt.Errorf("imports: bad extension glob %q: %w", g, err)
			}
		}
	}
	if len(c.Resources.Names) == 0 {
		return fmt.Errorf("imports.resources.names must not be empty")
	}
	if strings.TrimSpace(c.Hook.Symbol) == "" {
		return fmt.Errorf("imports.hook.symbol not configured")
	}
	return nil
}
