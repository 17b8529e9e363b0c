package engine

import (
	"sync"
	"time"
)

// PausableClock measures running time of a session, excluding pauses
type PausableClock struct {
	mu       sync.RWMutex
	provider TimeProvider

	started         bool
	startTime       time.Time
	isPaused        bool
	pauseStartTime  time.Time     // When current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a stopped clock reading from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider}
}

// Restart begins measuring from zero, unpaused
func (pc *PausableClock) Restart() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.started = true
	pc.startTime = pc.provider.Now()
	pc.isPaused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}

// Stop clears the clock, Elapsed reads zero until the next Restart
func (pc *PausableClock) Stop() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.started = false
	pc.isPaused = false
	pc.totalPausedTime = 0
}

// Pause freezes elapsed time, no-op when already paused or stopped
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.started || pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues elapsed time, accumulating the pause duration
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// Elapsed returns running time since Restart minus all pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if !pc.started {
		return 0
	}
	now := pc.provider.Now()
	if pc.isPaused {
		// During pause: frozen at pause point
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
