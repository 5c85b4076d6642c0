package component

// Facing is a horizontal orientation.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 for right (and the zero value), -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Opposite returns the other facing.
func (f Facing) Opposite() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingOf returns the facing for the sign of v, or fallback when v is 0.
func FacingOf(v float64, fallback Facing) Facing {
	switch {
	case v > 0:
		return FacingRight
	case v < 0:
		return FacingLeft
	default:
		return fallback
	}
}

// ParseFacing accepts "left" or "right"; anything else is right.
func ParseFacing(s string) Facing {
	if s == "left" {
		return FacingLeft
	}
	return FacingRight
}

// Transform anchors an entity at the bottom-center of its collision box.
// Facing is the physical orientation used for movement and attack geometry.
type Transform struct {
	X      float64
	Y      float64
	Facing Facing
}

var TransformComponent = NewComponent[Transform]("transform")
