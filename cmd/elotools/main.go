package main

import (
	"fmt"
	"os"
	"path/filepath"

	"elotools/internal/config"
	"elotools/internal/logging"

	"github.com/spf13/cobra"
)

// cli carries the global flags and the configuration they resolve to.
type cli struct {
	// Global flags
	verbose    bool
	configPath string
	projectDir string

	cfg     *config.Config
	cfgPath string
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	rootCmd := &cobra.Command{
		Use:   "elotools",
		Short: "Build tooling for the ELO web project",
		Long: `elotools keeps generated data and source layout of the ELO web project honest.

  bncc     converts the BNCC curriculum document into the JavaScript data module
  imports  checks that relative imports climb exactly as many levels as the file is deep

Settings come from .elotools.yaml in the project directory; flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Config file (default: <project>/"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVarP(&app.projectDir, "project", "p", "", "Project directory (default: current)")

	rootCmd.AddCommand(newBNCCCmd(app))
	rootCmd.AddCommand(newImportsCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	return rootCmd
}

// setup loads the config, applies the global flags and starts the logger.
func (c *cli) setup() error {
	path := c.configPath
	if path == "" {
		dir := c.projectDir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, config.DefaultConfigFile)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.projectDir != "" {
		cfg.ProjectRoot = c.projectDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := logging.Initialize(cfg.Logging, c.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.cfg = cfg
	c.cfgPath = path
	logging.Boot("config %s, project root %s", path, cfg.ProjectRoot)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
