package engine

// Sample is one aggregate observation taken at a batch boundary
type Sample struct {
	Step   uint64 `json:"step"`
	CountA int    `json:"count_a"`
	CountB int    `json:"count_b"`
}

// History is a fixed-capacity ring of samples, oldest evicted on overflow
type History struct {
	buf   []Sample
	start int // Index of the oldest sample
	n     int
}

// NewHistory creates a ring holding at most capacity samples, minimum 1
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Sample, capacity)}
}

// Append adds a sample, returns true if the oldest sample was evicted
func (h *History) Append(s Sample) bool {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = s
		h.n++
		return false
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % len(h.buf)
	return true
}

// Len returns the number of stored samples
func (h *History) Len() int { return h.n }

// Cap returns the configured capacity
func (h *History) Cap() int { return len(h.buf) }

// Samples appends the stored samples to dst in chronological order
func (h *History) Samples(dst []Sample) []Sample {
	for i := 0; i < h.n; i++ {
		dst = append(dst, h.buf[(h.start+i)%len(h.buf)])
	}
	return dst
}

// Latest returns the most recent sample
func (h *History) Latest() (Sample, bool) {
	if h.n == 0 {
		return Sample{}, false
	}
	return h.buf[(h.start+h.n-1)%len(h.buf)], true
}

// Reset drops all samples, capacity is retained
func (h *History) Reset() {
	h.start = 0
	h.n = 0
}
