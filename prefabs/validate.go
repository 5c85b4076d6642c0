package prefabs

import (
	"fmt"

	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/ecs/render"
)

// requiredTimers lists the timers each kind cannot run without.
var requiredTimers = map[string][]string{
	KindPlayer:     {component.TimerInvulnerable},
	KindPatroller:  {component.TimerRemoval},
	KindAmbusher:   {component.TimerRemoval, component.TimerAttackCooldown, component.TimerAttackReset},
	KindCharger:    {component.TimerRemoval, component.TimerAttackDuration, component.TimerAttackCooldown},
	KindTurret:     {component.TimerAttackCooldown},
	KindProjectile: {component.TimerLifetime},
}

// requiredStatuses lists the statuses a kind's behavior enters directly.
var requiredStatuses = map[string][]string{
	KindPlayer:    {"idle", "run", "jump", "fall"},
	KindPatroller: {"run", "hit", "dead hit", "dead ground"},
	KindAmbusher:  {"idle", "anticipation", "attack", "hit", "dead hit", "dead ground"},
	KindCharger:   {"idle", "anticipation", "attack", "hit", "dead hit", "dead ground"},
	KindTurret:    {"idle", "attack"},
}

// Validate checks a spec against itself and the frame library. Any
// failure is a configuration error that must stop the simulation from
// starting.
func Validate(spec *ArchetypeSpec, lib *render.Library) error {
	if spec == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidSpec, spec.Name, fmt.Sprintf(format, args...))
	}

	switch spec.Kind {
	case KindPlayer, KindPatroller, KindAmbusher, KindCharger, KindTurret,
		KindProjectile, KindHazard, KindCoin, KindGoal:
	default:
		return fail("unknown kind %q", spec.Kind)
	}
	if len(spec.States) == 0 {
		return fail("no states")
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return fail("collider must have positive size")
	}
	if _, ok := spec.States[spec.DefaultStatus]; !ok {
		return fail("default status %q not in states", spec.DefaultStatus)
	}

	table, err := spec.StateTable()
	if err != nil {
		return err
	}
	for _, status := range requiredStatuses[spec.Kind] {
		if _, ok := table[status]; !ok {
			return fail("missing status %q", status)
		}
	}
	for status, st := range table {
		if st.Next == "" {
			continue
		}
		if _, ok := table[st.Next]; !ok {
			return fail("status %q names unknown successor %q", status, st.Next)
		}
		if st.Repeat != component.RepeatOnce {
			return fail("cyclic status %q cannot have a successor", status)
		}
	}

	if err := lib.Require(spec.Name, spec.Statuses()...); err != nil {
		return fmt.Errorf("prefabs: %s: %w", spec.Name, err)
	}

	frameCount := func(status string) int {
		fs, _ := lib.Lookup(spec.Name, status)
		return fs.Len()
	}
	for i, m := range spec.Melee {
		if _, ok := table[m.Status]; !ok {
			return fail("melee variant %d uses unknown status %q", i, m.Status)
		}
		if m.Frame < 0 || m.Frame >= frameCount(m.Status) {
			return fail("melee variant %d frame %d outside %q (%d frames)", i, m.Frame, m.Status, frameCount(m.Status))
		}
		if m.Width <= 0 || m.Height <= 0 {
			return fail("melee variant %d has empty detection zone", i)
		}
	}
	if spec.Kind == KindPlayer && len(spec.Melee) == 0 {
		return fail("player needs at least one melee variant")
	}
	if r := spec.Ranged; r != nil {
		if _, ok := table[r.Status]; !ok {
			return fail("ranged attack uses unknown status %q", r.Status)
		}
		if r.Frame < 0 || r.Frame >= frameCount(r.Status) {
			return fail("ranged frame %d outside %q (%d frames)", r.Frame, r.Status, frameCount(r.Status))
		}
		if r.Projectile == "" {
			return fail("ranged attack has no projectile")
		}
	}
	if spec.Kind == KindTurret && spec.Ranged == nil {
		return fail("turret needs a ranged attack")
	}

	for _, name := range requiredTimers[spec.Kind] {
		d, ok := spec.Timer(name)
		if !ok || d <= 0 {
			return fail("timer %q must be positive", name)
		}
	}
	if _, isEnemy := spec.EnemyKind(); isEnemy && spec.Health <= 0 && spec.Kind != KindTurret {
		return fail("health must be positive")
	}
	if spec.Kind == KindPlayer && spec.Health <= 0 {
		return fail("health must be positive")
	}
	return nil
}

// ValidateAll validates every spec and checks that ranged projectiles name
// a loaded archetype.
func ValidateAll(specs map[string]*ArchetypeSpec, lib *render.Library) error {
	for _, name := range sortedNames(specs) {
		spec := specs[name]
		if err := Validate(spec, lib); err != nil {
			return err
		}
		if spec.Ranged != nil {
			if _, ok := specs[spec.Ranged.Projectile]; !ok {
				return fmt.Errorf("%w: %s: projectile archetype %q not loaded", ErrInvalidSpec, name, spec.Ranged.Projectile)
			}
		}
	}
	return nil
}
