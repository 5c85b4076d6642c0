package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// GoalSystem latches a win when the player reaches a goal.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem { return &GoalSystem{} }

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent)
	if p.Outcome != component.OutcomeNone {
		return
	}
	pbox, ok := collisionBox(w, player)
	if !ok {
		return
	}

	ecs.ForEach(w, component.GoalComponent, func(e ecs.Entity, _ *component.Goal) {
		if p.Outcome != component.OutcomeNone {
			return
		}
		if box, ok := collisionBox(w, e); ok && box.Intersects(pbox) {
			p.Outcome = component.OutcomeWin
			w.Events().Push(ecs.Event{Type: ecs.EventWin, Entity: player})
		}
	})
}
