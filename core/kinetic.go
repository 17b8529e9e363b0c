package core

import "github.com/lixenwraith/compartment-sim/vmath"

// Kinetic is the continuous visual state of an entity
type Kinetic struct {
	// Pos is the sub-cell position in viewport coordinates
	Pos vmath.Vec2
	// Vel is the displacement applied per frame
	Vel vmath.Vec2
}
