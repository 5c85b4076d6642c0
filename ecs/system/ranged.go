package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// RangedSystem spawns a projectile once per attack cycle when the
// attacker's status reaches the firing frame.
type RangedSystem struct {
	spawner Spawner
	fx      Effects
	log     *zap.Logger
}

func NewRangedSystem(spawner Spawner, fx Effects, log *zap.Logger) *RangedSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &RangedSystem{spawner: spawner, fx: orNop(fx), log: log}
}

func (s *RangedSystem) Update(w *ecs.World) {
	if w == nil || s.spawner == nil {
		return
	}

	ecs.ForEach3(w, component.RangedAttackComponent, component.AnimationComponent, component.TransformComponent, func(e ecs.Entity, r *component.RangedAttack, anim *component.Animation, t *component.Transform) {
		if anim.Status != r.Status {
			r.Fired = false
			return
		}
		if r.Fired || anim.Frame() != r.Frame {
			return
		}
		box, ok := collisionBox(w, e)
		if !ok {
			return
		}

		x := box.Right() + r.OffsetX
		if t.Facing == component.FacingLeft {
			x = box.Left() - r.OffsetX
		}
		y := box.Top() + r.OffsetY

		r.Fired = true
		p, err := s.spawner.Spawn(w, r.Projectile, x, y, t.Facing)
		if err != nil {
			s.log.Error("spawn projectile", zap.String("archetype", r.Projectile), zap.Error(err))
			return
		}
		if proj, ok := ecs.Get(w, p, component.ProjectileComponent); ok {
			proj.Owner = uint64(e)
		}
		s.fx.PlaySound("shoot")
	})
}
