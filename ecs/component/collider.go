package component

import "github.com/milk9111/treasurehunt/common"

// Collider is the broad collision box, bottom-center aligned with the
// Transform anchor. Solid colliders also block other bodies.
type Collider struct {
	Width  float64
	Height float64
	Solid  bool
}

// Box returns the world-space collision box for t.
func (c Collider) Box(t *Transform) common.Rect {
	if t == nil {
		return common.Rect{Width: c.Width, Height: c.Height}
	}
	return common.Rect{X: t.X - c.Width/2, Y: t.Y - c.Height, Width: c.Width, Height: c.Height}
}

// Place moves t so that its collision box matches box.
func Place(t *Transform, box common.Rect) {
	if t == nil {
		return
	}
	t.X = box.CenterX()
	t.Y = box.Bottom()
}

var ColliderComponent = NewComponent[Collider]("collider")
