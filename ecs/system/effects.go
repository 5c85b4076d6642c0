package system

import (
	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// Effects receives fire-and-forget presentation requests. The simulation
// never waits on them.
type Effects interface {
	PlaySound(name string)
	SpawnParticle(kind string, x, y float64)
}

// NopEffects drops every request.
type NopEffects struct{}

func (NopEffects) PlaySound(string)                       {}
func (NopEffects) SpawnParticle(string, float64, float64) {}

func orNop(fx Effects) Effects {
	if fx == nil {
		return NopEffects{}
	}
	return fx
}

// Spawner creates archetype instances at runtime, anchored bottom-center
// at (x, y).
type Spawner interface {
	Spawn(w *ecs.World, archetype string, x, y float64, facing component.Facing) (ecs.Entity, error)
}

// StaticGeometry is the solid level geometry bodies collide against.
type StaticGeometry interface {
	Overlapping(r common.Rect) []common.Rect
	Overlaps(r common.Rect) bool
	CollidePoint(x, y float64) bool
}

// StatusHook runs when an entity enters a status through a completion
// successor.
type StatusHook interface {
	OnStatusEnter(w *ecs.World, e ecs.Entity, status string)
}

// collisionBox returns the broad box of e.
func collisionBox(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return common.Rect{}, false
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent)
	if !ok {
		return common.Rect{}, false
	}
	return col.Box(t), true
}

// combatBox returns the frame-derived hitbox of e, falling back to the
// collision box.
func combatBox(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	if hb, ok := ecs.Get(w, e, component.HitboxComponent); ok && !hb.Rect.Empty() {
		return hb.Rect, true
	}
	return collisionBox(w, e)
}
