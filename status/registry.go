// Package status holds lock-free metrics shared between the engine and its observers
package status

import (
	"fmt"
	"sync/atomic"
)

// Engine metric keys
const (
	KeyTicks       = "engine.ticks"
	KeyBatches     = "engine.batches"
	KeyTransitions = "engine.transitions"
	KeyFlips       = "engine.flips"
	KeyEntities    = "engine.entities"
	KeyRunning     = "engine.running"
	KeyShareA      = "engine.share_a"
)

// Registry is the central metrics facade
// Engine caches pointers during construction; the tick loop writes directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key value", ints first, then floats, then bools
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.3f", key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s %t", key, v.Load()))
	})
	return lines
}
