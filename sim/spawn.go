package sim

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/ecs/render"
	"github.com/milk9111/treasurehunt/ecs/system"
	"github.com/milk9111/treasurehunt/prefabs"
)

var ErrUnknownArchetype = errors.New("sim: unknown archetype")

// floorProbeDepth is how far below its anchor a walker must find solid
// ground to be spawned.
const floorProbeDepth = 10

// spawner builds entities from archetype specs. It implements
// system.Spawner for runtime spawns such as projectiles.
type spawner struct {
	specs  map[string]*prefabs.ArchetypeSpec
	tables map[string]component.StateTable
	lib    *render.Library
	log    *zap.Logger
}

func newSpawner(specs map[string]*prefabs.ArchetypeSpec, lib *render.Library, log *zap.Logger) (*spawner, error) {
	s := &spawner{
		specs:  specs,
		tables: make(map[string]component.StateTable, len(specs)),
		lib:    lib,
		log:    log,
	}
	for name, spec := range specs {
		table, err := spec.StateTable()
		if err != nil {
			return nil, err
		}
		s.tables[name] = table
	}
	return s, nil
}

func (s *spawner) spec(archetype string) (*prefabs.ArchetypeSpec, error) {
	spec, ok := s.specs[archetype]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, archetype)
	}
	return spec, nil
}

// box returns the collision box an archetype would occupy at (x, y).
func (s *spawner) box(archetype string, x, y float64) (common.Rect, error) {
	spec, err := s.spec(archetype)
	if err != nil {
		return common.Rect{}, err
	}
	col := component.Collider{Width: spec.Collider.Width, Height: spec.Collider.Height}
	return col.Box(&component.Transform{X: x, Y: y}), nil
}

// Spawn creates an archetype instance anchored bottom-center at (x, y).
func (s *spawner) Spawn(w *ecs.World, archetype string, x, y float64, facing component.Facing) (ecs.Entity, error) {
	spec, err := s.spec(archetype)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := s.assemble(w, e, spec, x, y, facing); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("sim: spawn %s: %w", archetype, err)
	}
	s.log.Debug("spawned", zap.String("archetype", archetype), zap.Stringer("entity", e), zap.Float64("x", x), zap.Float64("y", y))
	return e, nil
}

func (s *spawner) assemble(w *ecs.World, e ecs.Entity, spec *prefabs.ArchetypeSpec, x, y float64, facing component.Facing) error {
	faction := component.ParseFaction(spec.Faction)

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, Facing: facing}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Solid:  spec.Solid,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Archetype:    spec.Name,
		Status:       spec.DefaultStatus,
		Speed:        spec.AnimationSpeed,
		Table:        s.tables[spec.Name],
		Frames:       s.lib.Archetype(spec.Name),
		NativeFacing: component.ParseFacing(spec.NativeFacing),
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.HitboxComponent, &component.Hitbox{}); err != nil {
		return err
	}

	timers := &component.Timers{}
	for _, name := range timerNames(spec) {
		d, _ := spec.Timer(name)
		timers.Set(name, system.NewTimer(w, e, name, d))
	}
	if err := ecs.Add(w, e, component.TimersComponent, timers); err != nil {
		return err
	}

	if spec.Health > 0 {
		if err := ecs.Add(w, e, component.HealthComponent, &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.AttackableComponent, &component.Attackable{Faction: faction}); err != nil {
			return err
		}
	}
	if spec.ContactDamage > 0 {
		if err := ecs.Add(w, e, component.DamageDealerComponent, &component.DamageDealer{Damage: spec.ContactDamage, Faction: faction}); err != nil {
			return err
		}
	}
	if variants := spec.Variants(); len(variants) > 0 {
		if err := ecs.Add(w, e, component.MeleeAttackComponent, &component.MeleeAttack{Variants: variants, Faction: faction, Active: -1}); err != nil {
			return err
		}
	}
	if r := spec.Ranged; r != nil {
		if err := ecs.Add(w, e, component.RangedAttackComponent, &component.RangedAttack{
			Status:     r.Status,
			Frame:      r.Frame,
			Projectile: r.Projectile,
			OffsetX:    r.OffsetX,
			OffsetY:    r.OffsetY,
		}); err != nil {
			return err
		}
	}

	switch spec.Kind {
	case prefabs.KindPlayer:
		return s.assemblePlayer(w, e, spec)
	case prefabs.KindPatroller, prefabs.KindAmbusher, prefabs.KindCharger, prefabs.KindTurret:
		return s.assembleEnemy(w, e, spec, facing)
	case prefabs.KindProjectile:
		if err := ecs.Add(w, e, component.BodyComponent, &component.Body{
			Direction: cp.Vector{X: facing.Sign()},
			Speed:     spec.Speed,
		}); err != nil {
			return err
		}
		timers.Activate(component.TimerLifetime, w.Now())
		return ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{})
	case prefabs.KindCoin:
		return ecs.Add(w, e, component.CoinComponent, &component.Coin{Kind: spec.Name, Amount: spec.Value})
	case prefabs.KindGoal:
		return ecs.Add(w, e, component.GoalComponent, &component.Goal{})
	case prefabs.KindHazard:
		return nil
	default:
		return fmt.Errorf("%w: kind %q", prefabs.ErrInvalidSpec, spec.Kind)
	}
}

func (s *spawner) assemblePlayer(w *ecs.World, e ecs.Entity, spec *prefabs.ArchetypeSpec) error {
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{
		Speed:   spec.Speed,
		Gravity: spec.Gravity,
		Resolve: true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{
		JumpSpeed:     spec.JumpSpeed,
		Knockback:     spec.Knockback,
		FallThreshold: spec.FallThreshold,
		CommonStatus:  true,
	})
}

func (s *spawner) assembleEnemy(w *ecs.World, e ecs.Entity, spec *prefabs.ArchetypeSpec, facing component.Facing) error {
	kind, _ := spec.EnemyKind()
	if kind != component.EnemyTurret {
		body := &component.Body{Speed: spec.Speed}
		if kind == component.EnemyPatroller {
			body.Direction.X = facing.Sign()
		}
		if err := ecs.Add(w, e, component.BodyComponent, body); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.EnemyComponent, &component.Enemy{
		Kind:          kind,
		DefaultStatus: spec.DefaultStatus,
		Speed:         spec.Speed,
		AttackSpeed:   spec.AttackSpeed,
		AggroX:        spec.Aggro.X,
		AggroY:        spec.Aggro.Y,
		AggroDistance: spec.Aggro.Distance,
	})
}

// timerNames returns spec's timer names in a stable order.
func timerNames(spec *prefabs.ArchetypeSpec) []string {
	order := []string{
		component.TimerInvulnerable,
		component.TimerRemoval,
		component.TimerAttackDuration,
		component.TimerAttackCooldown,
		component.TimerAttackReset,
		component.TimerLifetime,
	}
	out := make([]string, 0, len(spec.Timers))
	for _, name := range order {
		if _, ok := spec.Timers[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// walker reports whether an archetype must stand on solid ground.
func walker(spec *prefabs.ArchetypeSpec) bool {
	switch spec.Kind {
	case prefabs.KindPatroller, prefabs.KindAmbusher, prefabs.KindCharger:
		return true
	default:
		return false
	}
}
