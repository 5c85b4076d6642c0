package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

func TestPatrollerReversesAtLedge(t *testing.T) {
	geo := geometry(t,
		"......",
		"......",
		"..##..",
	)
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, component.EnemyPatroller, 192, 128, component.FacingRight, 10)
	body, _ := ecs.Get(w, e, component.BodyComponent)
	body.Direction.X = 1

	sched := ecs.NewScheduler(NewAISystem(geo), NewPhysicsSystem(geo, nil))
	reversed := false
	for i := 0; i < 60 && !reversed; i++ {
		box, ok := collisionBox(w, e)
		require.True(t, ok)
		noFloor := !geo.CollidePoint(box.Right()+1, box.Bottom()+1)

		sched.Step(w, frameDT)

		if noFloor {
			assert.Equal(t, -1.0, body.Direction.X, "frame %d", i)
			reversed = true
		} else {
			require.Equal(t, 1.0, body.Direction.X, "reversed early at frame %d", i)
		}
	}
	require.True(t, reversed)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, component.FacingLeft, tr.Facing)
	assert.LessOrEqual(t, tr.X+24, 256.0)
	assert.Equal(t, 120.0, body.Speed)
}

func TestPatrollerTurnsAtWall(t *testing.T) {
	geo := geometry(t,
		".....#",
		"######",
	)
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, component.EnemyPatroller, 200, 64, component.FacingRight, 10)
	body, _ := ecs.Get(w, e, component.BodyComponent)

	sched := ecs.NewScheduler(NewAISystem(geo), NewPhysicsSystem(geo, nil))
	for i := 0; i < 120; i++ {
		sched.Step(w, frameDT)
		box, _ := collisionBox(w, e)
		require.LessOrEqual(t, box.Right(), 320.0+2)
	}
	assert.Equal(t, -1.0, body.Direction.X)
}

func TestPatrollerStopsWhileHit(t *testing.T) {
	geo := geometry(t, "######")
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, component.EnemyPatroller, 192, 0, component.FacingRight, 10)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	anim.ForceStatus(StatusHit)
	body, _ := ecs.Get(w, e, component.BodyComponent)
	body.Direction.X = 1

	NewAISystem(geo).Update(w)
	assert.Zero(t, body.Direction.X)
}

func TestChargerBurstAndCooldown(t *testing.T) {
	geo := geometry(t,
		"..........",
		"##########",
	)
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 100, 64)
	e := spawnEnemy(t, w, component.EnemyCharger, 350, 64, component.FacingRight, 20)

	ai := NewAISystem(geo)
	sched := ecs.NewScheduler(ai, NewPhysicsSystem(geo, nil), NewAnimationSystem(ai), NewTimerSystem())
	sched.Step(w, frameDT)

	enemy, _ := ecs.Get(w, e, component.EnemyComponent)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	body, _ := ecs.Get(w, e, component.BodyComponent)

	require.Equal(t, StatusAnticipation, anim.Status)
	assert.True(t, enemy.HasAttacked)
	assert.True(t, timers.Pending(component.TimerAttackCooldown))
	assert.Equal(t, component.FacingLeft, tr.Facing)

	// Anticipation (3 frames) completes and the burst begins.
	for i := 0; i < 30 && anim.Status != StatusAttack; i++ {
		sched.Step(w, frameDT)
	}
	require.Equal(t, StatusAttack, anim.Status)
	assert.True(t, timers.Pending(component.TimerAttackDuration))
	assert.Equal(t, -1.0, body.Direction.X)

	// Run out the 4s burst; the charger turns at both ends of the floor,
	// overshooting by at most one step.
	step := 400 * frameDT
	for i := 0; i < 250; i++ {
		sched.Step(w, frameDT)
		box, _ := collisionBox(w, e)
		require.GreaterOrEqual(t, box.Left(), -step-1)
		require.LessOrEqual(t, box.Right(), 640+step+1)
	}
	assert.Equal(t, StatusIdle, anim.Status)
	assert.Zero(t, body.Direction.X)
	assert.True(t, enemy.HasAttacked, "cooldown still running")

	// The 7s cooldown clears the flag.
	ecs.DestroyEntity(w, player)
	for i := 0; i < 200; i++ {
		sched.Step(w, frameDT)
	}
	assert.False(t, enemy.HasAttacked)
	assert.False(t, timers.Pending(component.TimerAttackCooldown))
}

func TestChargerIgnoresPlayerOutsideWindow(t *testing.T) {
	geo := geometry(t, "..........", "##########")
	w := ecs.NewWorld()
	spawnPlayer(t, w, 100, 0)
	e := spawnEnemy(t, w, component.EnemyCharger, 350, 64, component.FacingRight, 20)

	NewAISystem(geo).Update(w)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	assert.Equal(t, StatusIdle, anim.Status)
}

func TestAmbusherStrikesOnceThenResets(t *testing.T) {
	geo := geometry(t, "..........", "##########")
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 300, 64)
	e := spawnEnemy(t, w, component.EnemyAmbusher, 360, 64, component.FacingRight, 10)
	add(t, w, e, component.MeleeAttackComponent, &component.MeleeAttack{
		Faction:  component.FactionEnemy,
		Active:   -1,
		Variants: []component.AttackVariant{{Status: StatusAttack, Frame: 2, OffsetY: 10, Width: 50, Height: 30, Damage: 15}},
	})
	enemy, _ := ecs.Get(w, e, component.EnemyComponent)
	enemy.AggroX = 160
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	timers.Get(component.TimerAttackCooldown).Duration = timers.Get(component.TimerAttackReset).Duration * 3

	ai := NewAISystem(geo)
	resolver := NewResolver(nil, nil)
	sched := ecs.NewScheduler(ai, NewAnimationSystem(ai), NewCombatSystem(resolver), NewTimerSystem())

	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	health, _ := ecs.Get(w, player, component.HealthComponent)
	sawAttack := false
	for i := 0; i < 60; i++ {
		sched.Step(w, frameDT)
		if anim.Status == StatusAttack {
			sawAttack = true
		}
	}
	require.True(t, sawAttack)
	assert.Equal(t, 85, health.Current)
	assert.Equal(t, StatusIdle, anim.Status)
	assert.True(t, enemy.HasAttacked)
	assert.True(t, timers.Pending(component.TimerAttackReset))

	// No second strike while the cooldown runs, even after the reset.
	for i := 0; i < 90; i++ {
		sched.Step(w, frameDT)
		require.NotEqual(t, StatusAnticipation, anim.Status)
	}
	assert.False(t, enemy.HasAttacked)
	assert.Equal(t, 85, health.Current)
}

func TestTurretFiresOncePerCycle(t *testing.T) {
	w := ecs.NewWorld()
	spawnPlayer(t, w, 100, 64)
	e := spawnEnemy(t, w, component.EnemyTurret, 400, 64, component.FacingLeft, 10)
	add(t, w, e, component.RangedAttackComponent, &component.RangedAttack{Status: StatusAttack, Frame: 2, Projectile: "pearl", OffsetY: 24})
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	timers.Get(component.TimerAttackCooldown).Duration = 2 * timers.Get(component.TimerAttackReset).Duration

	spawner := &spawnRecorder{}
	ai := NewAISystem(nil)
	sched := ecs.NewScheduler(ai, NewAnimationSystem(ai), NewRangedSystem(spawner, nil, nil), NewTimerSystem())

	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	sched.Step(w, frameDT)
	require.Equal(t, StatusAttack, anim.Status)

	// The 4-frame attack completes, returns to idle and arms the cooldown.
	for i := 0; i < 40; i++ {
		sched.Step(w, frameDT)
	}
	require.Len(t, spawner.spawns, 1)
	assert.Equal(t, "pearl", spawner.spawns[0].archetype)
	assert.Equal(t, component.FacingLeft, spawner.spawns[0].facing)
	assert.Equal(t, 400.0-24, spawner.spawns[0].x)
	assert.Equal(t, StatusIdle, anim.Status)
	assert.True(t, timers.Pending(component.TimerAttackCooldown))

	// After the 2s cooldown the turret fires again.
	for i := 0; i < 150; i++ {
		sched.Step(w, frameDT)
	}
	assert.Len(t, spawner.spawns, 2)
}

func turretRig(t *testing.T) (*ecs.World, *ecs.Scheduler, ecs.Entity, ecs.Entity, *spawnRecorder) {
	t.Helper()
	w := ecs.NewWorld()
	player := spawnPlayer(t, w, 100, 64)
	e := spawnEnemy(t, w, component.EnemyTurret, 400, 64, component.FacingLeft, 10)
	add(t, w, e, component.RangedAttackComponent, &component.RangedAttack{Status: StatusAttack, Frame: 2, Projectile: "pearl", OffsetY: 24})

	spawner := &spawnRecorder{}
	ai := NewAISystem(nil)
	sched := ecs.NewScheduler(ai, NewAnimationSystem(ai), NewRangedSystem(spawner, nil, nil), NewTimerSystem())
	return w, sched, player, e, spawner
}

func TestTurretStandsDownWhenPlayerLeavesRange(t *testing.T) {
	w, sched, player, e, spawner := turretRig(t)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	pt, _ := ecs.Get(w, player, component.TransformComponent)

	sched.Step(w, frameDT)
	require.Equal(t, StatusAttack, anim.Status)

	pt.X = 1200
	sched.Step(w, frameDT)
	assert.Equal(t, StatusIdle, anim.Status)
	assert.False(t, timers.Pending(component.TimerAttackCooldown), "nothing was fired")

	for i := 0; i < 30; i++ {
		sched.Step(w, frameDT)
	}
	assert.Empty(t, spawner.spawns)

	pt.X = 100
	sched.Step(w, frameDT)
	assert.Equal(t, StatusAttack, anim.Status)
}

func TestTurretCooldownArmedWhenFiredVolleyIsCut(t *testing.T) {
	w, sched, player, e, spawner := turretRig(t)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	timers, _ := ecs.Get(w, e, component.TimersComponent)
	pt, _ := ecs.Get(w, player, component.TransformComponent)

	for i := 0; i < 30 && len(spawner.spawns) == 0; i++ {
		sched.Step(w, frameDT)
	}
	require.Len(t, spawner.spawns, 1)
	require.Equal(t, StatusAttack, anim.Status)

	pt.X = 1200
	sched.Step(w, frameDT)
	assert.Equal(t, StatusIdle, anim.Status)
	assert.True(t, timers.Pending(component.TimerAttackCooldown))
	assert.Len(t, spawner.spawns, 1)
}

func TestTurretIgnoresDistantPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spawnPlayer(t, w, 100, 64)
	e := spawnEnemy(t, w, component.EnemyTurret, 700, 64, component.FacingLeft, 10)

	NewAISystem(nil).Update(w)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	assert.Equal(t, StatusIdle, anim.Status)
}

type spawnCall struct {
	archetype string
	x, y      float64
	facing    component.Facing
}

type spawnRecorder struct {
	spawns []spawnCall
}

func (s *spawnRecorder) Spawn(w *ecs.World, archetype string, x, y float64, facing component.Facing) (ecs.Entity, error) {
	s.spawns = append(s.spawns, spawnCall{archetype: archetype, x: x, y: y, facing: facing})
	e := ecs.CreateEntity(w)
	return e, ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{})
}
