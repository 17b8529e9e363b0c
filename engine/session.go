package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/layout"
	"github.com/lixenwraith/compartment-sim/physics"
	"github.com/lixenwraith/compartment-sim/status"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// Option configures a Session at construction
type Option func(*Session)

// WithRand injects the random source, seeded generators make runs reproducible
func WithRand(rng vmath.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry publishes engine metrics into a shared registry
func WithRegistry(reg *status.Registry) Option {
	return func(s *Session) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithTimeProvider sets the time source of the run clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Session) {
		if tp != nil {
			s.clock = NewPausableClock(tp)
		}
	}
}

// Session owns one simulation: entities, layout, clock and history
// Every method must be called from the goroutine that pumps the FrameScheduler,
// except Display which may be read from anywhere
type Session struct {
	params   *Params
	tuning   Tuning
	frames   FrameScheduler
	rng      vmath.Rand
	logger   *slog.Logger
	clock    *PausableClock
	registry *status.Registry

	state    State
	alive    bool // Liveness flag checked at the start of every frame callback
	torn     bool
	pending  FrameHandle
	runID    string
	callback func() // Cached frame callback, avoids a closure allocation per frame

	layout    layout.Layout
	hasLayout bool
	placed    bool // False while entities wait for the first layout

	entities []Entity
	counts   [core.CompartmentCount]int
	frame    uint64
	step     uint64
	history  *History

	display     atomic.Pointer[Display]
	subscribers []subscriber
	nextSubID   int

	// Cached metric pointers
	statTicks       *atomic.Int64
	statBatches     *atomic.Int64
	statTransitions *atomic.Int64
	statFlips       *atomic.Int64
	statEntities    *atomic.Int64
	statRunning     *atomic.Bool
	statShareA      *status.AtomicFloat
}

type subscriber struct {
	id int
	fn func(Display)
}

// NewSession creates a stopped session
// The display is published immediately with the configured populations
func NewSession(params *Params, tuning Tuning, frames FrameScheduler, opts ...Option) *Session {
	s := &Session{
		params:   params,
		tuning:   tuning.Normalize(),
		frames:   frames,
		rng:      vmath.NewFastRand(uint64(time.Now().UnixNano())),
		logger:   slog.New(slog.DiscardHandler),
		registry: status.NewRegistry(),
		state:    StateStopped,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewPausableClock(NewMonotonicTimeProvider())
	}
	s.history = NewHistory(s.tuning.HistoryCap)
	s.callback = s.onFrame

	s.statTicks = s.registry.Ints.Get(status.KeyTicks)
	s.statBatches = s.registry.Ints.Get(status.KeyBatches)
	s.statTransitions = s.registry.Ints.Get(status.KeyTransitions)
	s.statFlips = s.registry.Ints.Get(status.KeyFlips)
	s.statEntities = s.registry.Ints.Get(status.KeyEntities)
	s.statRunning = s.registry.Bools.Get(status.KeyRunning)
	s.statShareA = s.registry.Floats.Get(status.KeyShareA)

	s.loadConfiguredCounts()
	s.publish()
	return s
}

// ===== Lifecycle =====

// Start begins a fresh run from Stopped or resumes from Paused
// Returns false when the session is already running or torn down
func (s *Session) Start() bool {
	if s.torn {
		return false
	}
	resuming := s.state == StatePaused
	if !s.transition(StateRunning) {
		return false
	}

	if resuming {
		s.clock.Resume()
		s.logger.Info("session resumed", "run_id", s.runID, "step", s.step)
	} else {
		s.populate()
		s.clock.Restart()
		s.logger.Info("session started",
			"run_id", s.runID,
			"population_a", s.counts[core.CompartmentA],
			"population_b", s.counts[core.CompartmentB],
		)
	}

	s.alive = true
	s.statRunning.Store(true)
	s.publish()
	s.schedule()
	return true
}

// Pause halts the loop and keeps all state, no-op unless running
func (s *Session) Pause() bool {
	if s.torn || !s.transition(StatePaused) {
		return false
	}
	s.halt()
	s.clock.Pause()
	s.statRunning.Store(false)
	s.logger.Info("session paused", "run_id", s.runID, "step", s.step)
	s.publish()
	return true
}

// Reset halts the loop, discards entities and history, and shows the configured populations
// From Stopped only the display is refreshed
func (s *Session) Reset() bool {
	if s.torn {
		return false
	}
	if s.state == StateStopped {
		s.loadConfiguredCounts()
		s.publish()
		return false
	}
	if !s.transition(StateStopped) {
		return false
	}

	s.halt()
	s.clock.Stop()
	s.logger.Info("session reset", "run_id", s.runID, "step", s.step)

	s.entities = nil
	s.placed = false
	s.history.Reset()
	s.frame = 0
	s.step = 0
	s.runID = ""
	s.statRunning.Store(false)
	s.statEntities.Store(0)

	s.loadConfiguredCounts()
	s.publish()
	return true
}

// Teardown resets the session and detaches every subscriber
// The session is unusable afterwards; repeated calls are no-ops
func (s *Session) Teardown() {
	if s.torn {
		return
	}
	s.Reset()
	s.subscribers = nil
	s.torn = true
}

// transition applies a lifecycle change if the table allows it
func (s *Session) transition(to State) bool {
	if !CanTransition(s.state, to) {
		s.logger.Debug("lifecycle transition rejected", "from", s.state, "to", to)
		return false
	}
	s.state = to
	return true
}

// ===== Frame loop =====

// schedule requests the next frame unless one is already pending
func (s *Session) schedule() {
	if s.pending != nil || s.frames == nil {
		return
	}
	s.pending = s.frames.RequestFrame(s.callback)
}

// halt clears the liveness flag and cancels the pending continuation
func (s *Session) halt() {
	s.alive = false
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

func (s *Session) onFrame() {
	s.pending = nil
	if !s.alive {
		return
	}
	s.Tick()
	if s.alive {
		s.schedule()
	}
}

// Tick advances the simulation one frame, no-op unless running with a layout
// Order: motion for all entities, frame counter, due batches, recount, batch boundary
func (s *Session) Tick() {
	if s.state != StateRunning || !s.hasLayout || !s.placed {
		return
	}
	t := s.tuning

	for i := range s.entities {
		e := &s.entities[i]
		AdvanceVisual(e, s.layout.Area(e.Compartment), t, s.rng)
	}

	s.frame++
	s.statTicks.Add(1)

	// Probabilities are read live, edits apply at each entity's next batch
	pAB, pBA := s.params.Probabilities()
	var batches, transitions, flips int64
	for i := range s.entities {
		e := &s.entities[i]
		if !e.dueAt(s.frame, t.FramesPerBatch) {
			continue
		}
		changed, n := AdvanceDiscrete(e, pAB, pBA, t.TrialsPerBatch, s.layout, t, s.rng)
		batches++
		flips += int64(n)
		if changed {
			transitions++
		}
	}
	if batches > 0 {
		s.statBatches.Add(batches)
		s.statFlips.Add(flips)
		s.statTransitions.Add(transitions)
	}

	s.recount()

	if s.frame%uint64(t.FramesPerBatch) == 0 {
		s.step += uint64(t.TrialsPerBatch)
		s.history.Append(Sample{
			Step:   s.step,
			CountA: s.counts[core.CompartmentA],
			CountB: s.counts[core.CompartmentB],
		})
		s.logger.Debug("batch boundary",
			"run_id", s.runID,
			"step", s.step,
			"count_a", s.counts[core.CompartmentA],
			"count_b", s.counts[core.CompartmentB],
		)
		s.publish()
	}
}

// ===== Entities =====

// populate allocates a fresh entity set from the current population parameters
func (s *Session) populate() {
	popA := s.params.Population(core.CompartmentA)
	popB := s.params.Population(core.CompartmentB)

	s.entities = make([]Entity, popA+popB)
	for i := range s.entities {
		e := &s.entities[i]
		e.Compartment = core.CompartmentA
		if i >= popA {
			e.Compartment = core.CompartmentB
		}
		e.Offset = s.rng.Intn(s.tuning.FramesPerBatch)
	}

	s.placed = false
	if s.hasLayout {
		s.scatter()
	}

	s.frame = 0
	s.step = 0
	s.runID = uuid.NewString()
	s.recount()
	s.statEntities.Store(int64(len(s.entities)))

	s.history.Reset()
	s.history.Append(Sample{
		Step:   0,
		CountA: s.counts[core.CompartmentA],
		CountB: s.counts[core.CompartmentB],
	})
}

// scatter places every entity uniformly inside its compartment with a small random velocity
func (s *Session) scatter() {
	t := s.tuning
	for i := range s.entities {
		e := &s.entities[i]
		area := s.layout.Area(e.Compartment).Inset(max(t.Inset, t.Radius))
		e.Kinetic.Pos = physics.RandomPoint(area, s.rng)
		physics.SetImpulse(&e.Kinetic, physics.RandomVelocity(t.ArrivalSpeed, s.rng))
		e.Transitioning = false
		e.Progress = 0
	}
	s.placed = true
}

// recount derives the authoritative counts by scanning all entities
func (s *Session) recount() {
	var counts [core.CompartmentCount]int
	for i := range s.entities {
		counts[s.entities[i].Compartment]++
	}
	s.counts = counts
	if total := counts[core.CompartmentA] + counts[core.CompartmentB]; total > 0 {
		s.statShareA.Set(float64(counts[core.CompartmentA]) / float64(total))
	} else {
		s.statShareA.Set(0)
	}
}

func (s *Session) loadConfiguredCounts() {
	s.counts[core.CompartmentA] = s.params.Population(core.CompartmentA)
	s.counts[core.CompartmentB] = s.params.Population(core.CompartmentB)
}

// ===== Layout =====

// Resize recomputes the layout for a viewport of w×h cells
// Entities created before the first valid layout are scattered now
// Returns false and keeps the previous geometry when the viewport is too small
func (s *Session) Resize(w, h int) bool {
	if s.torn {
		return false
	}
	lay, ok := layout.Compute(w, h)
	if !ok {
		s.logger.Debug("viewport too small", "width", w, "height", h)
		return false
	}
	s.layout = lay
	s.hasLayout = true
	if !s.placed {
		s.scatter()
	}
	return true
}

// Layout returns the current geometry, false before the first valid Resize
func (s *Session) Layout() (layout.Layout, bool) {
	return s.layout, s.hasLayout
}

// ===== Views =====

// publish stores a fresh Display and notifies subscribers of the current state
func (s *Session) publish() {
	pAB, pBA := s.params.Probabilities()

	d := &Display{
		RunID:   s.runID,
		State:   s.state,
		Counts:  s.counts,
		Step:    s.step,
		Frame:   s.frame,
		Elapsed: s.clock.Elapsed(),
		History: s.history.Samples(make([]Sample, 0, s.history.Len())),
	}
	for c := core.Compartment(0); c < core.CompartmentCount; c++ {
		d.Names[c] = s.params.Name(c)
		d.Percent[c] = s.params.Percent(c)
	}
	a, b, ok := Equilibrium(d.Total(), pAB, pBA)
	d.Equilibrium = [core.CompartmentCount]float64{a, b}
	d.HasEquilibrium = ok

	s.display.Store(d)
	for _, sub := range s.subscribers {
		sub.fn(*d)
	}
}

// Display returns the last published view, safe from any goroutine
func (s *Session) Display() Display {
	if d := s.display.Load(); d != nil {
		return *d
	}
	return Display{}
}

// Subscribe registers fn to receive every published display and returns the unsubscribe function
// fn runs synchronously on the session goroutine and must not call back into the session
func (s *Session) Subscribe(fn func(Display)) func() {
	if s.torn || fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Frame appends the per-frame view of every entity to dst[:0]
func (s *Session) Frame(dst []EntityView) []EntityView {
	dst = dst[:0]
	for i := range s.entities {
		dst = append(dst, s.entities[i].View())
	}
	return dst
}

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Counts returns the live per-compartment counts
func (s *Session) Counts() [core.CompartmentCount]int { return s.counts }

// FrameCount returns the monotonic frame counter of the current run
func (s *Session) FrameCount() uint64 { return s.frame }

// Step returns the discrete step counter of the current run
func (s *Session) Step() uint64 { return s.step }

// Params returns the live parameters the session reads
func (s *Session) Params() *Params { return s.params }

// Tuning returns the normalized tuning
func (s *Session) Tuning() Tuning { return s.tuning }

// Registry returns the metrics registry the session writes to
func (s *Session) Registry() *status.Registry { return s.registry }
