package system

import (
	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// AnimationSystem advances every status machine, runs enter hooks for
// completion successors and refreshes hitboxes from the shown frame.
type AnimationSystem struct {
	hooks []StatusHook
}

func NewAnimationSystem(hooks ...StatusHook) *AnimationSystem {
	return &AnimationSystem{hooks: hooks}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()

	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		if entered := anim.Advance(dt); entered != "" {
			for _, h := range s.hooks {
				if h != nil {
					h.OnStatusEnter(w, e, entered)
				}
			}
		}
		refreshHitbox(w, e, anim)
	})
}

// refreshHitbox sets the hitbox to the opaque bounds of the current frame.
// Frames are drawn with their bottom-center on the transform anchor.
func refreshHitbox(w *ecs.World, e ecs.Entity, anim *component.Animation) {
	hb, ok := ecs.Get(w, e, component.HitboxComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}

	fs := anim.CurrentFrames()
	if fs.Len() > 0 {
		b := fs.BoundsAt(anim.Frame(), anim.Flipped(t.Facing))
		if !b.Empty() {
			left := t.X - float64(fs.Size.X)/2
			top := t.Y - float64(fs.Size.Y)
			hb.Rect = common.Rect{
				X:      left + float64(b.Min.X),
				Y:      top + float64(b.Min.Y),
				Width:  float64(b.Dx()),
				Height: float64(b.Dy()),
			}
			hb.FromFrame = true
			return
		}
	}

	box, _ := collisionBox(w, e)
	hb.Rect = box
	hb.FromFrame = false
}
