// Package sim assembles the world from a level layout and archetype specs
// and steps it in a fixed system order.
package sim

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/ecs/render"
	"github.com/milk9111/treasurehunt/ecs/system"
	"github.com/milk9111/treasurehunt/level"
	"github.com/milk9111/treasurehunt/logging"
	"github.com/milk9111/treasurehunt/prefabs"
)

var ErrNoPlayer = errors.New("sim: level has no player")

// Config is everything a simulation is built from.
type Config struct {
	Layout  *level.Layout
	Specs   map[string]*prefabs.ArchetypeSpec
	Library *render.Library
	Effects system.Effects
	Logger  *zap.Logger
}

// Simulation is one running level.
type Simulation struct {
	id      string
	world   *ecs.World
	sched   *ecs.Scheduler
	geo     *level.Geometry
	spawner *spawner
	player  ecs.Entity
	log     *zap.Logger

	events  []ecs.Event
	outcome component.Outcome
}

// Sprite is the render state of one entity. X and Y are the top-left of
// the frame image.
type Sprite struct {
	Entity    ecs.Entity
	Archetype string
	Status    string
	Frame     int
	Image     image.Image
	X, Y      float64
	Flip      bool
	Flash     bool
	Box       common.Rect
	Hitbox    common.Rect
}

// New validates cfg, builds the static geometry and spawns every placement.
// Walkers placed without ground under them are skipped.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.Library == nil {
		cfg.Library = render.NewLibrary()
	}
	if err := prefabs.ValidateAll(cfg.Specs, cfg.Library); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := logging.OrNop(cfg.Logger).With(zap.String("session", id))

	sp, err := newSpawner(cfg.Specs, cfg.Library, log)
	if err != nil {
		return nil, err
	}

	var solids []common.Rect
	for _, p := range cfg.Layout.Placements {
		spec, err := sp.spec(p.Archetype)
		if err != nil {
			return nil, fmt.Errorf("sim: placement at %d,%d: %w", p.Col, p.Row, err)
		}
		if spec.Solid {
			x, y := p.Anchor()
			box, _ := sp.box(p.Archetype, x, y)
			solids = append(solids, box)
		}
	}
	geo := level.BuildGeometry(cfg.Layout, solids...)

	s := &Simulation{
		id:      id,
		world:   ecs.NewWorld(),
		geo:     geo,
		spawner: sp,
		log:     log,
	}
	if err := s.populate(cfg.Layout); err != nil {
		return nil, err
	}

	fx := cfg.Effects
	resolver := system.NewResolver(fx, log)
	ai := system.NewAISystem(geo)
	s.sched = ecs.NewScheduler(
		system.NewPlayerControllerSystem(fx),
		ai,
		system.NewPhysicsSystem(geo, fx),
		system.NewPlayerStateSystem(),
		system.NewAnimationSystem(ai),
		system.NewCombatSystem(resolver),
		system.NewRangedSystem(sp, fx, log),
		system.NewHazardSystem(resolver),
		system.NewPickupCollectSystem(fx),
		system.NewGoalSystem(),
		system.NewTimerSystem(),
	)

	log.Info("level loaded",
		zap.String("level", cfg.Layout.Name),
		zap.Int("entities", len(ecs.Entities(s.world))),
		zap.Int("solids", len(geo.Solids())),
	)
	return s, nil
}

func (s *Simulation) populate(layout *level.Layout) error {
	players := 0
	for _, p := range layout.Placements {
		spec, _ := s.spawner.spec(p.Archetype)
		x, y := p.Anchor()
		if walker(spec) && !s.geo.CollidePoint(x, y+floorProbeDepth) {
			s.log.Debug("spawn rejected: no floor",
				zap.String("archetype", p.Archetype),
				zap.Int("col", p.Col),
				zap.Int("row", p.Row),
			)
			continue
		}
		if spec.Kind == prefabs.KindPlayer && players > 0 {
			return fmt.Errorf("sim: second player at %d,%d", p.Col, p.Row)
		}

		facing := component.ParseFacing(p.Facing)
		if p.Facing == "" {
			facing = component.ParseFacing(spec.NativeFacing)
		}
		e, err := s.spawner.Spawn(s.world, p.Archetype, x, y, facing)
		if err != nil {
			return err
		}
		if spec.Kind == prefabs.KindPlayer {
			s.player = e
			players++
		}
	}
	if players == 0 {
		return ErrNoPlayer
	}
	return nil
}

// Step advances the simulation by dt seconds with the given input. It is a
// no-op once the level is won or lost.
func (s *Simulation) Step(dt float64, in component.Input) {
	s.events = s.events[:0]
	if s.outcome != component.OutcomeNone {
		return
	}
	if input, ok := ecs.Get(s.world, s.player, component.InputComponent); ok {
		*input = in
	}

	s.sched.Step(s.world, dt)
	s.events = append(s.events, s.world.Events().Drain()...)

	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent); ok && p.Outcome != s.outcome {
		s.outcome = p.Outcome
		s.log.Info("level finished",
			zap.Stringer("outcome", s.outcome),
			zap.Int("coins", p.Coins),
			zap.Duration("elapsed", s.world.Now()),
		)
	}
}

// ID returns the session id.
func (s *Simulation) ID() string { return s.id }

// World exposes the entity registry for inspection.
func (s *Simulation) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Simulation) Player() ecs.Entity { return s.player }

// Events returns the events emitted by the last Step.
func (s *Simulation) Events() []ecs.Event { return s.events }

// Outcome returns the latched level result.
func (s *Simulation) Outcome() component.Outcome { return s.outcome }

// Coins returns the player's collected total.
func (s *Simulation) Coins() int {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent); ok {
		return p.Coins
	}
	return 0
}

// PlayerHealth returns the player's current and maximum health.
func (s *Simulation) PlayerHealth() (current, max int) {
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent); ok {
		return h.Current, h.Max
	}
	return 0, 0
}

// Solids returns the merged static collision rectangles.
func (s *Simulation) Solids() []common.Rect { return s.geo.Solids() }

// Sprites returns the render state of every animated entity, player last.
func (s *Simulation) Sprites() []Sprite {
	var out []Sprite
	ecs.ForEach2(s.world, component.AnimationComponent, component.TransformComponent, func(e ecs.Entity, anim *component.Animation, t *component.Transform) {
		sp := Sprite{
			Entity:    e,
			Archetype: anim.Archetype,
			Status:    anim.Status,
			Frame:     anim.Frame(),
			Flip:      anim.Flipped(t.Facing),
		}
		if fs := anim.CurrentFrames(); fs.Len() > 0 {
			sp.Image = fs.Frame(sp.Frame)
			sp.X = t.X - float64(fs.Size.X)/2
			sp.Y = t.Y - float64(fs.Size.Y)
		}
		if col, ok := ecs.Get(s.world, e, component.ColliderComponent); ok {
			sp.Box = col.Box(t)
		}
		sp.Hitbox = sp.Box
		if hb, ok := ecs.Get(s.world, e, component.HitboxComponent); ok && !hb.Rect.Empty() {
			sp.Hitbox = hb.Rect
		}
		if p, ok := ecs.Get(s.world, e, component.PlayerComponent); ok {
			sp.Flash = p.Flash
		}
		out = append(out, sp)
	})
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Entity == s.player, out[j].Entity == s.player
		if pi != pj {
			return pj
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}
