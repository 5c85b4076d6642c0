package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// target is the player position as seen by enemy strategies.
type target struct {
	entity ecs.Entity
	center cp.Vector
	found  bool
}

// agent bundles the components a strategy reads and writes for one enemy.
type agent struct {
	w      *ecs.World
	e      ecs.Entity
	enemy  *component.Enemy
	anim   *component.Animation
	t      *component.Transform
	body   *component.Body
	timers *component.Timers
	center cp.Vector
	hasBox bool
}

// strategy is the behavior of one enemy kind. think runs every frame;
// enter runs when a completion successor becomes the active status.
type strategy struct {
	think func(s *AISystem, a *agent, player target)
	enter func(s *AISystem, a *agent, status string)
}

// AISystem drives every enemy through its kind's strategy.
type AISystem struct {
	geo        StaticGeometry
	strategies map[component.EnemyKind]strategy
}

func NewAISystem(geo StaticGeometry) *AISystem {
	return &AISystem{
		geo: geo,
		strategies: map[component.EnemyKind]strategy{
			component.EnemyPatroller: {think: thinkPatroller},
			component.EnemyAmbusher:  {think: thinkAmbusher, enter: enterAmbusher},
			component.EnemyCharger:   {think: thinkCharger, enter: enterCharger},
			component.EnemyTurret:    {think: thinkTurret, enter: enterTurret},
		},
	}
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := findTarget(w)

	ecs.ForEach3(w, component.EnemyComponent, component.AnimationComponent, component.TransformComponent, func(e ecs.Entity, enemy *component.Enemy, anim *component.Animation, t *component.Transform) {
		a := s.agent(w, e, enemy, anim, t)
		if h, ok := ecs.Get(w, e, component.HealthComponent); ok && h.Dead {
			a.stop()
			return
		}
		if st, ok := s.strategies[enemy.Kind]; ok && st.think != nil {
			st.think(s, a, player)
		}
	})
}

// OnStatusEnter runs enter hooks for statuses reached by completion.
func (s *AISystem) OnStatusEnter(w *ecs.World, e ecs.Entity, status string) {
	if w == nil {
		return
	}
	if status == StatusDeadDone {
		if timers, ok := ecs.Get(w, e, component.TimersComponent); ok {
			if !timers.Activate(component.TimerRemoval, w.Now()) {
				ecs.QueueDestroy(w, e)
			}
		}
		return
	}

	enemy, ok := ecs.Get(w, e, component.EnemyComponent)
	if !ok {
		return
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	if st, ok := s.strategies[enemy.Kind]; ok && st.enter != nil {
		st.enter(s, s.agent(w, e, enemy, anim, t), status)
	}
}

func (s *AISystem) agent(w *ecs.World, e ecs.Entity, enemy *component.Enemy, anim *component.Animation, t *component.Transform) *agent {
	a := &agent{w: w, e: e, enemy: enemy, anim: anim, t: t}
	a.body, _ = ecs.Get(w, e, component.BodyComponent)
	a.timers, _ = ecs.Get(w, e, component.TimersComponent)
	if box, ok := collisionBox(w, e); ok {
		a.center, a.hasBox = box.Center(), true
	}
	return a
}

func findTarget(w *ecs.World) target {
	e, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return target{}
	}
	box, ok := collisionBox(w, e)
	if !ok {
		return target{}
	}
	return target{entity: e, center: box.Center(), found: true}
}

// stop zeroes horizontal motion.
func (a *agent) stop() {
	if a.body != nil {
		a.body.Direction.X = 0
	}
}

// inWindow reports whether the player is within the per-axis aggro
// window, and the horizontal offset to the player.
func (a *agent) inWindow(player target) (float64, bool) {
	if !player.found || !a.hasBox {
		return 0, false
	}
	d := player.center.Sub(a.center)
	return d.X, math.Abs(d.X) <= a.enemy.AggroX && math.Abs(d.Y) <= a.enemy.AggroY
}

// walk moves the agent in its current direction at speed, reversing when
// the floor ends or a wall starts ahead.
func (s *AISystem) walk(a *agent, speed float64) {
	if a.body == nil {
		return
	}
	a.body.Speed = speed
	if a.body.Direction.X == 0 {
		a.body.Direction.X = a.t.Facing.Sign()
	}
	if box, ok := collisionBox(a.w, a.e); ok && blockedAhead(s.geo, box, a.body.Direction.X) {
		a.body.Direction.X = -a.body.Direction.X
	}
	a.t.Facing = component.FacingOf(a.body.Direction.X, a.t.Facing)
}

func thinkPatroller(s *AISystem, a *agent, _ target) {
	if a.anim.Status != StatusRun {
		a.stop()
		return
	}
	s.walk(a, a.enemy.Speed)
}

func thinkAmbusher(_ *AISystem, a *agent, player target) {
	a.stop()
	if a.anim.Status != a.enemy.DefaultStatus || a.enemy.HasAttacked || a.timers.Pending(component.TimerAttackCooldown) {
		return
	}
	dx, ok := a.inWindow(player)
	if !ok {
		return
	}
	a.t.Facing = component.FacingOf(dx, a.t.Facing)
	if a.anim.SetStatus(StatusAnticipation) {
		a.enemy.HasAttacked = true
		a.timers.Activate(component.TimerAttackCooldown, a.w.Now())
	}
}

func enterAmbusher(_ *AISystem, a *agent, status string) {
	switch status {
	case StatusAttack:
		if m, ok := ecs.Get(a.w, a.e, component.MeleeAttackComponent); ok {
			m.Begin(m.VariantFor(StatusAttack))
		}
	case a.enemy.DefaultStatus:
		if a.enemy.HasAttacked {
			a.timers.Activate(component.TimerAttackReset, a.w.Now())
		}
	}
}

func thinkCharger(s *AISystem, a *agent, player target) {
	switch a.anim.Status {
	case StatusAttack:
		s.walk(a, a.enemy.AttackSpeed)
		return
	case a.enemy.DefaultStatus:
		a.stop()
	default:
		a.stop()
		return
	}
	if a.enemy.HasAttacked {
		return
	}
	dx, ok := a.inWindow(player)
	if !ok {
		return
	}
	a.t.Facing = component.FacingOf(dx, a.t.Facing)
	if a.anim.SetStatus(StatusAnticipation) {
		a.enemy.HasAttacked = true
		a.timers.Activate(component.TimerAttackCooldown, a.w.Now())
	}
}

func enterCharger(_ *AISystem, a *agent, status string) {
	if status != StatusAttack {
		return
	}
	if a.body != nil {
		a.body.Speed = a.enemy.AttackSpeed
		a.body.Direction.X = a.t.Facing.Sign()
	}
	a.timers.Activate(component.TimerAttackDuration, a.w.Now())
}

func thinkTurret(_ *AISystem, a *agent, player target) {
	inRange := player.found && a.hasBox && player.center.Distance(a.center) < a.enemy.AggroDistance
	if a.anim.Status == StatusAttack {
		if !inRange {
			abortVolley(a)
		}
		return
	}
	if a.anim.Status != a.enemy.DefaultStatus || a.timers.Pending(component.TimerAttackCooldown) {
		return
	}
	if inRange {
		a.anim.SetStatus(StatusAttack)
	}
}

// abortVolley drops a turret back to its default status when the player
// leaves range mid-attack. A volley that already fired still arms the
// cooldown.
func abortVolley(a *agent) {
	if !a.anim.SetStatus(a.enemy.DefaultStatus) {
		return
	}
	if r, ok := ecs.Get(a.w, a.e, component.RangedAttackComponent); ok && r.Fired {
		a.timers.Activate(component.TimerAttackCooldown, a.w.Now())
	}
}

func enterTurret(_ *AISystem, a *agent, status string) {
	if status == a.enemy.DefaultStatus {
		a.timers.Activate(component.TimerAttackCooldown, a.w.Now())
	}
}
