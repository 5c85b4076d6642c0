package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// PlayerControllerSystem turns the input snapshot into motion, jumps and
// attack starts.
type PlayerControllerSystem struct {
	fx Effects
}

func NewPlayerControllerSystem(fx Effects) *PlayerControllerSystem {
	return &PlayerControllerSystem{fx: orNop(fx)}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent, component.InputComponent, component.BodyComponent, func(e ecs.Entity, p *component.Player, in *component.Input, body *component.Body) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		if p.Outcome != component.OutcomeNone {
			body.Direction.X = 0
			return
		}

		switch {
		case in.Right:
			body.Direction.X = 1
			t.Facing = component.FacingRight
		case in.Left:
			body.Direction.X = -1
			t.Facing = component.FacingLeft
		default:
			body.Direction.X = 0
		}

		if in.Jump && body.OnFloor {
			body.Direction.Y = -p.JumpSpeed
			body.OnFloor = false
			s.fx.PlaySound("jump")
			s.fx.SpawnParticle("jump_dust", t.X, t.Y)
		}

		if in.Attack {
			s.startAttack(w, e, p)
		}
	})
}

// startAttack plays the next variant of the combo unless an attack is
// still running.
func (s *PlayerControllerSystem) startAttack(w *ecs.World, e ecs.Entity, p *component.Player) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok || anim.Locked() {
		return
	}
	melee, ok := ecs.Get(w, e, component.MeleeAttackComponent)
	if !ok || len(melee.Variants) == 0 {
		return
	}

	idx := p.Combo % len(melee.Variants)
	v := melee.Variants[idx]
	if !anim.ForceStatus(v.Status) {
		return
	}
	melee.Begin(idx)
	p.Combo = (idx + 1) % len(melee.Variants)
	p.CommonStatus = anim.Spec().Interruptible
	s.fx.PlaySound(v.Status)
}
