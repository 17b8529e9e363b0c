package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/compartment-sim/config"
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
	"github.com/lixenwraith/compartment-sim/report"
)

// headlessOptions selects run length, arena geometry and export targets
type headlessOptions struct {
	Batches int
	Width   int
	Height  int
	CSVPath string
	PNGPath string
	JSON    bool // Print the summary as JSON instead of a text line
}

func newHeadlessCmd() *cobra.Command {
	var opts headlessOptions

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run a fixed number of batches without a terminal and export the history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Engine.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := runHeadless(ctx, cfg, opts, logger)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), summary, opts.JSON)
		},
	}

	cmd.Flags().IntVar(&opts.Batches, "batches", 200, "Batches to simulate")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "Arena width in cells")
	cmd.Flags().IntVar(&opts.Height, "height", 24, "Arena height in cells")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "Write the history as CSV to this file")
	cmd.Flags().StringVar(&opts.PNGPath, "png", "", "Write a history chart as PNG to this file")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the summary as JSON")
	cmd.Flags().Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	return cmd
}

// runHeadless pumps a session frame by frame until the requested batches ran or ctx is done
func runHeadless(ctx context.Context, cfg *config.Config, opts headlessOptions, logger *slog.Logger) (report.Summary, error) {
	if opts.Batches < 0 {
		return report.Summary{}, fmt.Errorf("batches must be non-negative, got %d", opts.Batches)
	}

	frames := engine.NewManualFrames()
	session := engine.NewSession(cfg.Params(), cfg.Tuning(), frames,
		engine.WithRand(newRand(cfg.Engine.Seed)),
		engine.WithLogger(logger),
	)
	defer session.Teardown()

	if !session.Resize(opts.Width, opts.Height) {
		return report.Summary{}, fmt.Errorf("arena %dx%d is too small", opts.Width, opts.Height)
	}
	session.Start()

	fpb := session.Tuning().FramesPerBatch
	for batch := 0; batch < opts.Batches; batch++ {
		if err := ctx.Err(); err != nil {
			logger.Info("headless run interrupted", "batch", batch)
			break
		}
		if frames.Run(fpb) < fpb {
			break
		}
	}

	display := session.Display()
	logger.Info("headless run finished",
		"run_id", display.RunID,
		"step", display.Step,
		"count_a", display.Counts[core.CompartmentA],
		"count_b", display.Counts[core.CompartmentB],
	)

	if opts.CSVPath != "" {
		if err := writeFile(opts.CSVPath, func(w io.Writer) error {
			return report.WriteCSV(w, display.Names, display.History)
		}); err != nil {
			return report.Summary{}, err
		}
	}
	if opts.PNGPath != "" {
		if err := writeFile(opts.PNGPath, func(w io.Writer) error {
			return report.RenderPNG(w, display.Names, display.History)
		}); err != nil {
			return report.Summary{}, err
		}
	}
	return report.NewSummary(display), nil
}

// writeFile creates path and runs fn on it, the close error is reported too
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func printSummary(w io.Writer, s report.Summary, asJSON bool) error {
	if asJSON {
		return report.WriteJSON(w, s)
	}
	_, err := fmt.Fprintf(w, "step %d: %s=%d %s=%d", s.Step, s.NameA, s.CountA, s.NameB, s.CountB)
	if err != nil {
		return err
	}
	if s.Equilibrium != nil {
		_, err = fmt.Fprintf(w, " (equilibrium %.1f/%.1f)", s.Equilibrium[0], s.Equilibrium[1])
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
