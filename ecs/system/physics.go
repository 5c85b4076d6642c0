package system

import (
	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// PhysicsSystem integrates bodies and resolves them against static solids
// one axis at a time: horizontal first, then vertical.
type PhysicsSystem struct {
	geo StaticGeometry
	fx  Effects
}

func NewPhysicsSystem(geo StaticGeometry, fx Effects) *PhysicsSystem {
	return &PhysicsSystem{geo: geo, fx: orNop(fx)}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()

	ecs.ForEach3(w, component.BodyComponent, component.TransformComponent, component.ColliderComponent, func(e ecs.Entity, body *component.Body, t *component.Transform, col *component.Collider) {
		body.Direction.Y += body.Gravity * dt

		box := col.Box(t)
		box.X += body.Direction.X * body.Speed * dt
		if body.Resolve && s.geo != nil {
			box = resolveHorizontal(s.geo, box, body.Direction.X)
		}
		box.Y += body.Direction.Y * body.Speed * dt
		if body.Resolve && s.geo != nil {
			var hit bool
			box, hit = resolveVertical(s.geo, box, body.Direction.Y)
			if hit {
				body.Direction.Y = 0
			}
		}
		component.Place(t, box)

		body.WasOnFloor = body.OnFloor
		if body.Resolve && s.geo != nil {
			body.OnFloor = s.geo.Overlaps(floorProbe(box))
		}

		if body.OnFloor && !body.WasOnFloor && ecs.Has(w, e, component.PlayerComponent) {
			if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok && anim.Status == StatusFall {
				s.fx.SpawnParticle("fall_dust", box.CenterX(), box.Bottom())
			}
		}
	})
}

// floorProbe is a one-unit strip directly under box.
func floorProbe(box common.Rect) common.Rect {
	return common.Rect{X: box.X, Y: box.Bottom(), Width: box.Width, Height: 1}
}

// resolveHorizontal pushes box out of every solid it overlaps, using the
// sign of the horizontal direction to pick the contact edge.
func resolveHorizontal(geo StaticGeometry, box common.Rect, dirX float64) common.Rect {
	if dirX == 0 {
		return box
	}
	for _, solid := range geo.Overlapping(box) {
		if !solid.Intersects(box) {
			continue
		}
		if dirX > 0 {
			box.X = solid.Left() - box.Width
		} else {
			box.X = solid.Right()
		}
	}
	return box
}

// resolveVertical pushes box out of every solid it overlaps along y and
// reports whether any contact happened.
func resolveVertical(geo StaticGeometry, box common.Rect, dirY float64) (common.Rect, bool) {
	hit := false
	for _, solid := range geo.Overlapping(box) {
		if !solid.Intersects(box) {
			continue
		}
		hit = true
		if dirY > 0 {
			box.Y = solid.Top() - box.Height
		} else if dirY < 0 {
			box.Y = solid.Bottom()
		}
	}
	return box, hit
}

// edgeProbes returns the two points sampled ahead of box when moving in
// direction dir: one just below the leading bottom corner, one beside the
// leading edge at mid-height.
func edgeProbes(box common.Rect, dir float64) (gapX, gapY, wallX, wallY float64) {
	if dir < 0 {
		return box.Left() - 1, box.Bottom() + 1, box.Left() - 1, box.CenterY()
	}
	return box.Right() + 1, box.Bottom() + 1, box.Right() + 1, box.CenterY()
}

// blockedAhead reports whether a walker moving in direction dir should
// turn around: the floor ends or a wall starts in front of it.
func blockedAhead(geo StaticGeometry, box common.Rect, dir float64) bool {
	if geo == nil || dir == 0 {
		return false
	}
	gapX, gapY, wallX, wallY := edgeProbes(box, dir)
	return geo.CollidePoint(wallX, wallY) || !geo.CollidePoint(gapX, gapY)
}
