package component

import "github.com/jakecoffman/cp"

// Body is kinematic motion state. Position advances by Direction*Speed*dt
// per axis; Gravity is added to Direction.Y every second.
type Body struct {
	Direction cp.Vector
	Speed     float64
	Gravity   float64

	// Resolve enables per-axis resolution against static solids. Bodies
	// without it integrate only.
	Resolve bool

	OnFloor    bool
	WasOnFloor bool
}

var BodyComponent = NewComponent[Body]("body")
