// Package tui runs a session interactively on a terminal
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/engine"
	"github.com/lixenwraith/compartment-sim/render"
)

// App owns the event loop; every session call happens on the Run goroutine
type App struct {
	screen   tcell.Screen
	session  *engine.Session
	frames   *engine.ManualFrames
	renderer *render.Renderer
	logger   *slog.Logger
	fps      int

	showMetrics bool
	fits        bool // Last resize produced a layout for the current terminal
	views       []engine.EntityView
}

// Options configures an App
type Options struct {
	FPS         int
	ShowMetrics bool
	Logger      *slog.Logger
}

// New creates an app; frames must be the scheduler the session was built with
func New(screen tcell.Screen, session *engine.Session, frames *engine.ManualFrames, opts Options) *App {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		screen:      screen,
		session:     session,
		frames:      frames,
		renderer:    render.NewRenderer(screen),
		logger:      opts.Logger,
		fps:         opts.FPS,
		showMetrics: opts.ShowMetrics,
	}
}

// Run drives frames from a ticker and handles input until quit or ctx is done
// The session is torn down on return
func (a *App) Run(ctx context.Context) error {
	defer a.session.Teardown()

	a.resize()
	a.draw()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// Frame runs one pending session frame and redraws
func (a *App) Frame() {
	a.frames.Step()
	a.draw()
}

// HandleEvent reacts to one terminal event, returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !a.Dispatch(Lookup(ev.Key(), ev.Rune())) {
			return false
		}
		a.draw()
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
		a.draw()
	}
	return true
}

// Dispatch applies an action, returns false for quit
func (a *App) Dispatch(action Action) bool {
	params := a.session.Params()

	switch action {
	case ActionStart:
		a.session.Start()
	case ActionPause:
		a.session.Pause()
	case ActionReset:
		a.session.Reset()
	case ActionDecreaseAB:
		params.AdjustPercent(core.CompartmentA, -PercentStep)
	case ActionIncreaseAB:
		params.AdjustPercent(core.CompartmentA, PercentStep)
	case ActionDecreaseBA:
		params.AdjustPercent(core.CompartmentB, -PercentStep)
	case ActionIncreaseBA:
		params.AdjustPercent(core.CompartmentB, PercentStep)
	case ActionDecreasePopA:
		params.AdjustPopulation(core.CompartmentA, -PopulationStep)
	case ActionIncreasePopA:
		params.AdjustPopulation(core.CompartmentA, PopulationStep)
	case ActionDecreasePopB:
		params.AdjustPopulation(core.CompartmentB, -PopulationStep)
	case ActionIncreasePopB:
		params.AdjustPopulation(core.CompartmentB, PopulationStep)
	case ActionToggleMetrics:
		a.showMetrics = !a.showMetrics
	case ActionQuit:
		return false
	case ActionNone:
		return true
	}

	a.logger.Debug("action", "action", action, "state", a.session.State())
	a.refreshStopped(action)
	return true
}

// refreshStopped republishes the configured counts when a population edit lands on a stopped session
func (a *App) refreshStopped(action Action) {
	if a.session.State() != engine.StateStopped {
		return
	}
	switch action {
	case ActionDecreasePopA, ActionIncreasePopA, ActionDecreasePopB, ActionIncreasePopB,
		ActionDecreaseAB, ActionIncreaseAB, ActionDecreaseBA, ActionIncreaseBA:
		a.session.Reset()
	}
}

// ShowMetrics reports whether the metrics overlay is visible
func (a *App) ShowMetrics() bool { return a.showMetrics }

func (a *App) resize() {
	w, h := a.screen.Size()
	aw, ah := render.ArenaSize(w, h)
	a.fits = a.session.Resize(aw, ah)
}

func (a *App) draw() {
	a.views = a.session.Frame(a.views)
	lay, ok := a.session.Layout()
	view := render.View{
		Display:   a.session.Display(),
		Layout:    lay,
		HasLayout: ok && a.fits,
		Entities:  a.views,
	}
	if a.showMetrics {
		view.Metrics = a.session.Registry().Lines()
	}
	a.renderer.Draw(view)
}
