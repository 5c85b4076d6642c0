package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

func spawnCoin(t *testing.T, w *ecs.World, kind string, amount int, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	add(t, w, e, component.ColliderComponent, &component.Collider{Width: 24, Height: 24})
	add(t, w, e, component.CoinComponent, &component.Coin{Kind: kind, Amount: amount})
	return e
}

func TestCoinCollectedAndRemovedSameFrame(t *testing.T) {
	w := ecs.NewWorld()
	fx := &fxRecorder{}
	player := spawnPlayer(t, w, 100, 64)
	gold := spawnCoin(t, w, "gold", 2, 110, 50)
	far := spawnCoin(t, w, "diamond", 5, 400, 50)

	ecs.NewScheduler(NewPickupCollectSystem(fx)).Step(w, frameDT)

	p, _ := ecs.Get(w, player, component.PlayerComponent)
	assert.Equal(t, 2, p.Coins)
	assert.False(t, ecs.IsAlive(w, gold))
	assert.True(t, ecs.IsAlive(w, far))

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventCoinCollected, events[0].Type)
	assert.Equal(t, ecs.CoinData{Kind: "gold", Amount: 2, Total: 2}, events[0].Data)
	assert.Equal(t, []string{"coin"}, fx.sounds)
	assert.Equal(t, []string{"coin"}, fx.particles)
}

func TestGoalLatchesWinOnce(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 100, 64)
	for _, x := range []float64{100, 110} {
		g := ecs.CreateEntity(w)
		add(t, w, g, component.TransformComponent, &component.Transform{X: x, Y: 64})
		add(t, w, g, component.ColliderComponent, &component.Collider{Width: 30, Height: 96})
		add(t, w, g, component.GoalComponent, &component.Goal{})
	}

	sched := ecs.NewScheduler(NewGoalSystem())
	sched.Step(w, frameDT)
	sched.Step(w, frameDT)

	p, _ := ecs.Get(w, player, component.PlayerComponent)
	assert.Equal(t, component.OutcomeWin, p.Outcome)
	assert.Equal(t, 1, countEvents(w.Events().Drain(), ecs.EventWin))
}

func TestPlayerJumpOnlyFromFloor(t *testing.T) {
	geo := geometry(t,
		"....",
		"....",
		"####",
	)
	w := ecs.NewWorld()
	fx := &fxRecorder{}
	player := spawnPlayer(t, w, 100, 128)
	sched := ecs.NewScheduler(NewPlayerControllerSystem(fx), NewPhysicsSystem(geo, fx), NewPlayerStateSystem(), NewAnimationSystem())
	sched.Step(w, frameDT)

	body, _ := ecs.Get(w, player, component.BodyComponent)
	require.True(t, body.OnFloor)

	in, _ := ecs.Get(w, player, component.InputComponent)
	in.Jump = true
	sched.Step(w, frameDT)
	assert.Less(t, body.Direction.Y, 0.0)
	assert.False(t, body.OnFloor)
	assert.Equal(t, []string{"jump"}, fx.sounds)

	anim, _ := ecs.Get(w, player, component.AnimationComponent)
	assert.Equal(t, StatusJump, anim.Status)

	// Holding jump in the air does nothing.
	sched.Step(w, frameDT)
	assert.Equal(t, []string{"jump"}, fx.sounds)
}

func TestPlayerMovesAndFaces(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 100, 128)
	in, _ := ecs.Get(w, player, component.InputComponent)
	body, _ := ecs.Get(w, player, component.BodyComponent)
	tr, _ := ecs.Get(w, player, component.TransformComponent)
	ctrl := NewPlayerControllerSystem(nil)

	in.Left = true
	ctrl.Update(w)
	assert.Equal(t, -1.0, body.Direction.X)
	assert.Equal(t, component.FacingLeft, tr.Facing)

	in.Left, in.Right = false, true
	ctrl.Update(w)
	assert.Equal(t, 1.0, body.Direction.X)
	assert.Equal(t, component.FacingRight, tr.Facing)

	in.Right = false
	ctrl.Update(w)
	assert.Zero(t, body.Direction.X)
	assert.Equal(t, component.FacingRight, tr.Facing)
}

func TestPlayerFallStatus(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 100, 0)
	body, _ := ecs.Get(w, player, component.BodyComponent)
	anim, _ := ecs.Get(w, player, component.AnimationComponent)
	states := NewPlayerStateSystem()

	body.Direction.Y = 1.5
	states.Update(w)
	assert.Equal(t, StatusFall, anim.Status)

	body.Direction.Y = 0.5
	body.Direction.X = 1
	states.Update(w)
	assert.Equal(t, StatusRun, anim.Status)
}
