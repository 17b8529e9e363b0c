package engine

import (
	"github.com/lixenwraith/compartment-sim/core"
	"github.com/lixenwraith/compartment-sim/vmath"
)

// Entity is one simulated individual, stored by value in the session slice
// Compartment is written only by AdvanceDiscrete, Kinetic/Progress only by AdvanceVisual
type Entity struct {
	Compartment   core.Compartment
	Kinetic       core.Kinetic
	Transitioning bool
	Progress      float64      // Arc progress in [0, 1]
	Arc           vmath.Bezier // Valid while Transitioning
	Offset        int          // Stagger offset in [0, FramesPerBatch)
}

// EntityView is the read-only per-frame projection handed to renderers
type EntityView struct {
	Pos           vmath.Vec2
	Compartment   core.Compartment
	Transitioning bool
	Progress      float64
}

// View projects the entity for rendering
func (e *Entity) View() EntityView {
	return EntityView{
		Pos:           e.Kinetic.Pos,
		Compartment:   e.Compartment,
		Transitioning: e.Transitioning,
		Progress:      e.Progress,
	}
}

// dueAt reports whether the entity's batch runs on the given frame
func (e *Entity) dueAt(frame uint64, framesPerBatch int) bool {
	return (frame+uint64(e.Offset))%uint64(framesPerBatch) == 0
}
