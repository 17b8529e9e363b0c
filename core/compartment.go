package core

// Compartment is one of the two discrete states an entity can occupy
type Compartment uint8

const (
	CompartmentA Compartment = iota
	CompartmentB
)

// CompartmentCount is the number of compartments
const CompartmentCount = 2

// Other returns the opposite compartment
func (c Compartment) Other() Compartment {
	if c == CompartmentA {
		return CompartmentB
	}
	return CompartmentA
}

func (c Compartment) String() string {
	switch c {
	case CompartmentA:
		return "A"
	case CompartmentB:
		return "B"
	default:
		return "Unknown"
	}
}
