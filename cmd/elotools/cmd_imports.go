package main

import (
	"fmt"
	"path/filepath"

	"elotools/internal/imports"
	"elotools/internal/logging"

	"github.com/spf13/cobra"
)

// importFlags are shared by both validators.
type importFlags struct {
	root           string
	scan           string
	failOnMismatch bool
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "Source root depths are measured from (default from config)")
	cmd.Flags().StringVar(&f.scan, "scan", "", "Directory to validate (default from config)")
	cmd.Flags().BoolVar(&f.failOnMismatch, "fail-on-mismatch", false, "Exit non-zero when any import is wrong")
}

func newImportsCmd(app *cli) *cobra.Command {
	importsCmd := &cobra.Command{
		Use:   "imports",
		Short: "Relative import depth validators",
	}

	var full importFlags
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check ../ depth of every import of a known resource directory",
		Long: `Scans the source tree and, for every relative import that reaches one of the
configured resource directories (hooks, context, components, services, utils),
checks that its leading ../ run equals the file's depth below the source root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := app.cfg.Imports.Resources
			rule := imports.NewResourceRule(rc.Extensions, rc.Names)
			return runImports(cmd, app, full, rule, imports.ReportOptions{})
		},
	}
	full.register(validateCmd)

	var hook importFlags
	var symbol string
	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Check the import path of a single hook",
		Long: `Finds the first import of the configured symbol in each file and checks that it
reads exactly <../ × depth><dir>/<symbol>.

Example:
  elotools imports hook --symbol useSchoolDatabase --scan src/app`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hc := app.cfg.Imports.Hook
			if symbol != "" {
				hc.Symbol = symbol
			}
			rule := imports.NewSymbolRule(hc.Extensions, hc.Symbol, hc.Dir)
			return runImports(cmd, app, hook, rule, imports.ReportOptions{ShowSkipped: true, CorrectFilesPreview: 10})
		},
	}
	hook.register(hookCmd)
	hookCmd.Flags().StringVar(&symbol, "symbol", "", "Imported symbol to check (default from config)")

	importsCmd.AddCommand(validateCmd)
	importsCmd.AddCommand(hookCmd)
	return importsCmd
}

func runImports(cmd *cobra.Command, app *cli, f importFlags, rule imports.Rule, ro imports.ReportOptions) error {
	ic := app.cfg.Imports
	if f.root != "" {
		ic.DepthRoot = f.root
	}
	if f.scan != "" {
		ic.ScanRoot = f.scan
	}

	// Depths are computed with filepath.Rel, which needs both roots in the same form.
	depthRoot, err := filepath.Abs(app.cfg.Resolve(ic.DepthRoot))
	if err != nil {
		return fmt.Errorf("resolve depth root: %w", err)
	}
	scanRoot, err := filepath.Abs(app.cfg.Resolve(ic.ScanRoot))
	if err != nil {
		return fmt.Errorf("resolve scan root: %w", err)
	}

	v := imports.NewValidator(imports.Options{
		DepthRoot: depthRoot,
		ScanRoot:  scanRoot,
		Ignore:    ic.IgnorePatterns,
	}, rule)

	res, err := v.Run()
	if err != nil {
		return err
	}
	imports.WriteReport(cmd.OutOrStdout(), res, ro)
	logging.Imports("%s: %d files, %d correct, %d mismatches", rule.Name(), res.FilesScanned, res.Correct, len(res.Mismatches))

	if f.failOnMismatch && len(res.Mismatches) > 0 {
		return fmt.Errorf("%d import(s) with wrong depth", len(res.Mismatches))
	}
	return nil
}
