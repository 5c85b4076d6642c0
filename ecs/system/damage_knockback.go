package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// Damage statuses entered by enemies.
const (
	StatusHit      = "hit"
	StatusDeadHit  = "dead hit"
	StatusDeadDone = "dead ground"
)

// Resolver applies damage to players and enemies. It is shared by the
// systems that detect hits.
type Resolver struct {
	fx  Effects
	log *zap.Logger
}

func NewResolver(fx Effects, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{fx: orNop(fx), log: log}
}

// HurtPlayer applies amount to the player unless the invulnerability
// window is open. A successful hit knocks the player upward, opens the
// window and emits EventDamageTaken; the first hit that empties health
// latches a lose outcome.
func (r *Resolver) HurtPlayer(w *ecs.World, e ecs.Entity, amount int) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok || p.Outcome != component.OutcomeNone {
		return false
	}
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	if timers.Pending(component.TimerInvulnerable) {
		return false
	}
	health, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok || health.Dead {
		return false
	}

	health.Current -= amount
	if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
		body.Direction.Y -= p.Knockback
	}
	timers.Activate(component.TimerInvulnerable, w.Now())
	p.Flash = true
	r.fx.PlaySound("hit")

	w.Events().Push(ecs.Event{
		Type:   ecs.EventDamageTaken,
		Entity: e,
		Data:   ecs.DamageData{Amount: amount, Remaining: health.Current},
	})

	if health.Current <= 0 {
		health.Current = 0
		health.Dead = true
		p.Outcome = component.OutcomeLose
		w.Events().Push(ecs.Event{Type: ecs.EventLose, Entity: e})
		r.log.Info("player defeated", zap.Stringer("entity", e))
	}
	return true
}

// DamageEnemy applies amount to an enemy. Surviving enemies are forced
// into the hit status. The blow that empties health forces the death
// status, removes the enemy from the attackable and damage sets and emits
// EventEnemyDefeated exactly once.
func (r *Resolver) DamageEnemy(w *ecs.World, e ecs.Entity, amount int) bool {
	health, ok := ecs.Get(w, e, component.HealthComponent)
	if !ok || health.Dead {
		return false
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent)

	health.Current -= amount
	if health.Current > 0 {
		anim.ForceStatus(StatusHit)
		r.fx.PlaySound("hit")
		return true
	}

	health.Current = 0
	health.Dead = true
	ecs.Remove(w, e, component.AttackableComponent)
	ecs.Remove(w, e, component.DamageDealerComponent)
	if m, ok := ecs.Get(w, e, component.MeleeAttackComponent); ok {
		m.Stop()
	}
	if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
		body.Direction.X = 0
	}
	anim.ForceStatus(StatusDeadHit)
	r.fx.PlaySound("death")
	if box, ok := collisionBox(w, e); ok {
		r.fx.SpawnParticle("death", box.CenterX(), box.CenterY())
	}

	w.Events().Push(ecs.Event{
		Type:   ecs.EventEnemyDefeated,
		Entity: e,
		Data:   ecs.DamageData{Amount: amount},
	})
	if anim != nil {
		r.log.Debug("enemy defeated", zap.Stringer("entity", e), zap.String("archetype", anim.Archetype))
	}
	return true
}

// Damage routes amount to the player or enemy handler.
func (r *Resolver) Damage(w *ecs.World, e ecs.Entity, amount int) bool {
	if ecs.Has(w, e, component.PlayerComponent) {
		return r.HurtPlayer(w, e, amount)
	}
	return r.DamageEnemy(w, e, amount)
}
