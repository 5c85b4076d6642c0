package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// HazardSystem applies contact damage from every damage dealer touching
// the player. Projectiles are destroyed on contact.
type HazardSystem struct {
	resolver *Resolver
}

func NewHazardSystem(resolver *Resolver) *HazardSystem {
	if resolver == nil {
		resolver = NewResolver(nil, nil)
	}
	return &HazardSystem{resolver: resolver}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	pbox, ok := combatBox(w, player)
	if !ok {
		return
	}
	faction := component.FactionPlayer
	if a, ok := ecs.Get(w, player, component.AttackableComponent); ok {
		faction = a.Faction
	}

	ecs.ForEach(w, component.DamageDealerComponent, func(e ecs.Entity, d *component.DamageDealer) {
		if e == player || ecs.Doomed(w, e) || !d.Faction.CanHit(faction) {
			return
		}
		box, ok := combatBox(w, e)
		if !ok {
			return
		}
		if !box.Intersects(pbox) {
			return
		}
		s.resolver.HurtPlayer(w, player, d.Damage)
		if ecs.Has(w, e, component.ProjectileComponent) {
			ecs.QueueDestroy(w, e)
		}
	})
}
