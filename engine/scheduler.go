package engine

// FrameHandle cancels a pending frame request
// Cancel is idempotent and safe after the callback already ran
type FrameHandle interface {
	Cancel()
}

// FrameScheduler is the injected "next frame" capability
// RequestFrame arranges for fn to run once on the session's goroutine at the next frame
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
}

// ManualFrames is a FrameScheduler whose frames are pumped explicitly
// Used by tests and by the headless runner; not safe for concurrent use
type ManualFrames struct {
	queue []*manualRequest
}

type manualRequest struct {
	fn        func()
	cancelled bool
}

func (r *manualRequest) Cancel() { r.cancelled = true }

// NewManualFrames creates an empty pump
func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

// RequestFrame implements FrameScheduler
func (m *ManualFrames) RequestFrame(fn func()) FrameHandle {
	req := &manualRequest{fn: fn}
	m.queue = append(m.queue, req)
	return req
}

// Pending returns the number of live requests waiting for the next frame
func (m *ManualFrames) Pending() int {
	n := 0
	for _, r := range m.queue {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Step runs one frame: every request queued before the call, in order
// Requests made by the callbacks wait for the next Step
// Returns false if no live request was pending
func (m *ManualFrames) Step() bool {
	batch := m.queue
	m.queue = nil

	ran := false
	for _, r := range batch {
		if r.cancelled {
			continue
		}
		r.cancelled = true
		r.fn()
		ran = true
	}
	return ran
}

// Run steps up to n frames and returns how many ran
// Stops early once no request is pending
func (m *ManualFrames) Run(n int) int {
	for i := 0; i < n; i++ {
		if !m.Step() {
			return i
		}
	}
	return n
}
