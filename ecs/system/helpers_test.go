package system

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/ecs/render"
	"github.com/milk9111/treasurehunt/level"
)

const frameDT = 1.0 / 60

type fxRecorder struct {
	sounds    []string
	particles []string
}

func (f *fxRecorder) PlaySound(name string) { f.sounds = append(f.sounds, name) }

func (f *fxRecorder) SpawnParticle(kind string, _, _ float64) {
	f.particles = append(f.particles, kind)
}

func geometry(t *testing.T, rows ...string) *level.Geometry {
	t.Helper()
	l, err := level.FromRows(rows, nil)
	require.NoError(t, err)
	return level.BuildGeometry(l)
}

func placeholderFrames(counts map[string]int) map[string]*render.FrameSet {
	out := make(map[string]*render.FrameSet, len(counts))
	for status, n := range counts {
		out[status] = render.Placeholder(32, 32, n, image.Rect(0, 0, 32, 32), color.RGBA{A: 255})
	}
	return out
}

var enemyTable = component.StateTable{
	"idle":         {Repeat: component.RepeatCyclic, Interruptible: true},
	"run":          {Repeat: component.RepeatCyclic, Interruptible: true},
	"anticipation": {Repeat: component.RepeatOnce, Interruptible: true, Next: "attack"},
	"attack":       {Repeat: component.RepeatOnce, Interruptible: true, Next: "idle"},
	"hit":          {Repeat: component.RepeatOnce, Next: "idle"},
	"dead hit":     {Repeat: component.RepeatOnce, Next: "dead ground"},
	"dead ground":  {Repeat: component.RepeatOnce, Terminal: true},
}

var enemyFrames = map[string]int{
	"idle": 4, "run": 6, "anticipation": 3, "attack": 4, "hit": 4, "dead hit": 4, "dead ground": 4,
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h, v))
}

// spawnPlayer places a 34x56 player standing at (x, y).
func spawnPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Facing: component.FacingRight})
	add(t, w, e, component.ColliderComponent, &component.Collider{Width: 34, Height: 56})
	add(t, w, e, component.BodyComponent, &component.Body{Speed: 400, Gravity: 5, Resolve: true})
	add(t, w, e, component.PlayerComponent, &component.Player{JumpSpeed: 2, Knockback: 1.5, FallThreshold: 1, CommonStatus: true})
	add(t, w, e, component.InputComponent, &component.Input{})
	add(t, w, e, component.HealthComponent, &component.Health{Current: 100, Max: 100})
	add(t, w, e, component.AttackableComponent, &component.Attackable{Faction: component.FactionPlayer})

	timers := &component.Timers{}
	timers.Set(component.TimerInvulnerable, NewTimer(w, e, component.TimerInvulnerable, 500*time.Millisecond))
	add(t, w, e, component.TimersComponent, timers)

	states := component.StateTable{
		"idle":     {Repeat: component.RepeatCyclic, Interruptible: true},
		"run":      {Repeat: component.RepeatCyclic, Interruptible: true},
		"jump":     {Repeat: component.RepeatCyclic, Interruptible: true},
		"fall":     {Repeat: component.RepeatCyclic, Interruptible: true},
		"attack 0": {Repeat: component.RepeatOnce},
		"attack 1": {Repeat: component.RepeatOnce},
	}
	add(t, w, e, component.AnimationComponent, &component.Animation{
		Archetype: "player",
		Status:    "idle",
		Table:     states,
		Frames:    placeholderFrames(map[string]int{"idle": 5, "run": 6, "jump": 3, "fall": 1, "attack 0": 6, "attack 1": 6}),
	})
	add(t, w, e, component.MeleeAttackComponent, &component.MeleeAttack{
		Faction: component.FactionPlayer,
		Active:  -1,
		Variants: []component.AttackVariant{
			{Status: "attack 0", Frame: 1, OffsetY: 10, Width: 40, Height: 30, Damage: 5},
			{Status: "attack 1", Frame: 1, OffsetY: 10, Width: 40, Height: 30, Damage: 5},
		},
	})
	return e
}

// spawnEnemy places a 48x40 enemy of kind at (x, y) facing facing.
func spawnEnemy(t *testing.T, w *ecs.World, kind component.EnemyKind, x, y float64, facing component.Facing, health int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Facing: facing})
	add(t, w, e, component.ColliderComponent, &component.Collider{Width: 48, Height: 40})
	add(t, w, e, component.BodyComponent, &component.Body{})
	add(t, w, e, component.HealthComponent, &component.Health{Current: health, Max: health})
	add(t, w, e, component.AttackableComponent, &component.Attackable{Faction: component.FactionEnemy})
	add(t, w, e, component.DamageDealerComponent, &component.DamageDealer{Damage: 10, Faction: component.FactionEnemy})

	status := "idle"
	if kind == component.EnemyPatroller {
		status = "run"
	}
	add(t, w, e, component.EnemyComponent, &component.Enemy{
		Kind:          kind,
		DefaultStatus: status,
		Speed:         120,
		AttackSpeed:   400,
		AggroX:        300,
		AggroY:        32,
		AggroDistance: 500,
	})
	table := make(component.StateTable, len(enemyTable))
	for k, v := range enemyTable {
		table[k] = v
	}
	add(t, w, e, component.AnimationComponent, &component.Animation{
		Archetype: kind.String(),
		Status:    status,
		Table:     table,
		Frames:    placeholderFrames(enemyFrames),
	})

	timers := &component.Timers{}
	for name, d := range map[string]time.Duration{
		component.TimerRemoval:        3 * time.Second,
		component.TimerAttackDuration: 4 * time.Second,
		component.TimerAttackCooldown: 7 * time.Second,
		component.TimerAttackReset:    time.Second,
	} {
		timers.Set(name, NewTimer(w, e, name, d))
	}
	add(t, w, e, component.TimersComponent, timers)
	return e
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func cpVec(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} }
