package system

import (
	"time"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/timer"
)

// TimerSystem updates every entity's timers against the world clock.
// Entities queued for destruction are skipped so no callback runs for
// them.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem { return &TimerSystem{} }

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	ecs.ForEach(w, component.TimersComponent, func(e ecs.Entity, timers *component.Timers) {
		if ecs.Doomed(w, e) {
			return
		}
		timers.Update(now)
	})
}

// NewTimer builds the named timer for e with its expiry action bound. The
// action looks its components up when it fires, so it is a no-op once e
// is gone.
func NewTimer(w *ecs.World, e ecs.Entity, name string, d time.Duration) *timer.Timer {
	return timer.New(d, false, TimerAction(w, e, name))
}

// TimerAction returns the expiry callback for a named timer.
func TimerAction(w *ecs.World, e ecs.Entity, name string) func() {
	switch name {
	case component.TimerInvulnerable:
		return func() {
			if p, ok := ecs.Get(w, e, component.PlayerComponent); ok {
				p.Flash = false
			}
		}
	case component.TimerRemoval, component.TimerLifetime:
		return func() { ecs.QueueDestroy(w, e) }
	case component.TimerAttackDuration:
		return func() { endCharge(w, e) }
	case component.TimerAttackCooldown:
		return func() {
			if enemy, ok := ecs.Get(w, e, component.EnemyComponent); ok && enemy.Kind == component.EnemyCharger {
				enemy.HasAttacked = false
			}
		}
	case component.TimerAttackReset:
		return func() {
			if enemy, ok := ecs.Get(w, e, component.EnemyComponent); ok {
				enemy.HasAttacked = false
			}
		}
	default:
		return nil
	}
}

// endCharge returns a charger to its default status if it is still
// charging.
func endCharge(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent)
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok || anim.Status != StatusAttack {
		return
	}
	anim.ForceStatus(enemy.DefaultStatus)
	if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
		body.Direction.X = 0
	}
}
