package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elotools/internal/bncc"
	"elotools/internal/logging"

	"github.com/spf13/cobra"
)

func newBNCCCmd(app *cli) *cobra.Command {
	bnccCmd := &cobra.Command{
		Use:   "bncc",
		Short: "BNCC curriculum data module commands",
	}

	var (
		source string
		output string
		watch  bool
	)
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Generate the competencies module from the BNCC document",
		Long: `Extracts every **CODE** - description entry from the BNCC markdown document,
groups the entries by age band and by field of experience or subject, and writes
the JavaScript module the application imports.

With --watch the module is regenerated each time the document is saved.

Example:
  elotools bncc convert --source docs/BNCC.md --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.cfg
			if source != "" {
				cfg.BNCC.Source = source
			}
			if output != "" {
				cfg.BNCC.Output = output
			}
			src := cfg.Resolve(cfg.BNCC.Source)
			out := cfg.Resolve(cfg.BNCC.Output)

			convert := func() error {
				sum, err := bncc.Convert(src, out)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Arquivo gerado: %s\n", out)
				bncc.WriteSummary(cmd.OutOrStdout(), sum)
				return nil
			}
			if !watch {
				return convert()
			}

			debounce, err := time.ParseDuration(cfg.BNCC.WatchDebounce)
			if err != nil {
				return fmt.Errorf("invalid bncc.watch_debounce %q: %w", cfg.BNCC.WatchDebounce, err)
			}
			return runWatch(cmd.Context(), src, debounce, convert)
		},
	}
	convertCmd.Flags().StringVar(&source, "source", "", "BNCC markdown document (default from config)")
	convertCmd.Flags().StringVar(&output, "output", "", "Generated module path (default from config)")
	convertCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever the document changes")

	var (
		statsSource string
		expected    int
	)
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-band counts and check the expected total",
		Long: `Parses the BNCC document without writing anything and prints how many records
each age band and group received. The grand total is compared with --expected
(or bncc.expected_total); zero skips the comparison.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.cfg
			if statsSource != "" {
				cfg.BNCC.Source = statsSource
			}
			want := cfg.BNCC.ExpectedTotal
			if cmd.Flags().Changed("expected") {
				want = expected
			}

			tree, _, err := bncc.Parse(cfg.Resolve(cfg.BNCC.Source))
			if err != nil {
				return err
			}
			if !bncc.WriteStats(cmd.OutOrStdout(), tree, want) {
				logging.Get(logging.CategoryBNCC).Warn("total %d differs from expected %d", tree.Total(), want)
			}
			return nil
		},
	}
	statsCmd.Flags().StringVar(&statsSource, "source", "", "BNCC markdown document (default from config)")
	statsCmd.Flags().IntVar(&expected, "expected", 0, "Expected record total (default from config)")

	bnccCmd.AddCommand(convertCmd)
	bnccCmd.AddCommand(statsCmd)
	return bnccCmd
}

// runWatch blocks until SIGINT/SIGTERM or ctx is cancelled.
func runWatch(parent context.Context, source string, debounce time.Duration, convert func() error) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := bncc.NewWatcher(source, debounce, convert)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
