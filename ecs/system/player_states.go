package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// Shared status names.
const (
	StatusIdle         = "idle"
	StatusRun          = "run"
	StatusJump         = "jump"
	StatusFall         = "fall"
	StatusAnticipation = "anticipation"
	StatusAttack       = "attack"
)

// PlayerStateSystem derives the player's common status from motion while
// no locked attack is playing.
type PlayerStateSystem struct{}

func NewPlayerStateSystem() *PlayerStateSystem { return &PlayerStateSystem{} }

func (s *PlayerStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent, component.BodyComponent, component.AnimationComponent, func(e ecs.Entity, p *component.Player, body *component.Body, anim *component.Animation) {
		if !p.CommonStatus {
			if anim.Locked() {
				return
			}
			p.CommonStatus = true
		}
		anim.SetStatus(commonStatus(p, body))
	})
}

func commonStatus(p *component.Player, body *component.Body) string {
	switch {
	case body.Direction.Y < 0:
		return StatusJump
	case body.Direction.Y > p.FallThreshold:
		return StatusFall
	case body.Direction.X != 0:
		return StatusRun
	default:
		return StatusIdle
	}
}
