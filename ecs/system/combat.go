package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// CombatSystem resolves melee swings. A variant's detection zone is live
// only while its status shows the configured frame, and one activation
// damages at most once.
type CombatSystem struct {
	resolver *Resolver
}

func NewCombatSystem(resolver *Resolver) *CombatSystem {
	if resolver == nil {
		resolver = NewResolver(nil, nil)
	}
	return &CombatSystem{resolver: resolver}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.MeleeAttackComponent, component.AnimationComponent, component.TransformComponent, func(e ecs.Entity, m *component.MeleeAttack, anim *component.Animation, t *component.Transform) {
		v, ok := m.Current()
		if !ok {
			return
		}
		if anim.Status != v.Status {
			m.Stop()
			return
		}
		if m.DealtDamage || anim.Frame() != v.Frame {
			return
		}
		box, ok := collisionBox(w, e)
		if !ok {
			return
		}
		zone := v.Zone(box, t.Facing)

		ecs.ForEach(w, component.AttackableComponent, func(target ecs.Entity, a *component.Attackable) {
			if target == e || !m.Faction.CanHit(a.Faction) {
				return
			}
			hb, ok := combatBox(w, target)
			if !ok || !hb.Intersects(zone) {
				return
			}
			if s.resolver.Damage(w, target, v.Damage) {
				m.DealtDamage = true
			}
		})
	})
}
