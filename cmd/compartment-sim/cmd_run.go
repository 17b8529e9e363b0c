package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/compartment-sim/audio"
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
	"github.com/lixenwraith/compartment-sim/tui"
)

// cueVolume is the linear gain of the batch blip
const cueVolume = 0.25

var errNotTerminal = errors.New("stdout is not a terminal, use the headless command")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive terminal simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sound") {
				cfg.Display.Sound, _ = cmd.Flags().GetBool("sound")
			}
			if cmd.Flags().Changed("fps") {
				cfg.Display.FPS, _ = cmd.Flags().GetInt("fps")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Engine.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}

			logger, closeLog, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			core.SetCrashCleanup(screen.Fini)
			defer func() {
				screen.Fini()
				core.SetCrashCleanup(nil)
			}()

			frames := engine.NewManualFrames()
			session := engine.NewSession(cfg.Params(), cfg.Tuning(), frames,
				engine.WithRand(newRand(cfg.Engine.Seed)),
				engine.WithLogger(logger),
			)

			if cfg.Display.Sound {
				cue, stopAudio, err := audio.NewSpeakerCue(cueVolume)
				if err != nil {
					logger.Warn("audio unavailable, continuing without sound", "error", err)
				} else {
					defer stopAudio()
					session.Subscribe(cue.OnDisplay)
				}
			}

			ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := tui.New(screen, session, frames, tui.Options{
				FPS:         cfg.Display.FPS,
				ShowMetrics: cfg.Display.ShowMetrics,
				Logger:      logger,
			})
			logger.Info("interactive session started", "fps", cfg.Display.FPS, "sound", cfg.Display.Sound)
			return app.Run(ctx)
		},
	}

	cmd.Flags().Bool("sound", false, "Play a blip on every batch boundary")
	cmd.Flags().Int("fps", 0, "Frames per second")
	cmd.Flags().Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	return cmd
}

// runContext is the fallback when cobra runs without ExecuteContext
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
