package component

import "github.com/milk9111/treasurehunt/common"

// AttackVariant is one swing: a detection rectangle that is live only while
// Status shows Frame. The rectangle is placed against the front edge of the
// attacker's collision box; OffsetX pushes it outward, OffsetY down from the
// box top.
type AttackVariant struct {
	Status  string
	Frame   int
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Damage  int
}

// MeleeAttack holds an entity's swings and the activation in progress.
type MeleeAttack struct {
	Variants []AttackVariant
	Faction  Faction
	// Active is the index of the running variant, -1 when idle.
	Active      int
	DealtDamage bool
}

var MeleeAttackComponent = NewComponent[MeleeAttack]("melee_attack")

// Begin starts variant i and rearms the damage flag.
func (m *MeleeAttack) Begin(i int) bool {
	if m == nil || i < 0 || i >= len(m.Variants) {
		return false
	}
	m.Active = i
	m.DealtDamage = false
	return true
}

// Stop ends the running activation.
func (m *MeleeAttack) Stop() {
	if m == nil {
		return
	}
	m.Active = -1
}

// Current returns the running variant.
func (m *MeleeAttack) Current() (AttackVariant, bool) {
	if m == nil || m.Active < 0 || m.Active >= len(m.Variants) {
		return AttackVariant{}, false
	}
	return m.Variants[m.Active], true
}

// VariantFor returns the index of the variant that plays status.
func (m *MeleeAttack) VariantFor(status string) int {
	if m == nil {
		return -1
	}
	for i, v := range m.Variants {
		if v.Status == status {
			return i
		}
	}
	return -1
}

// Zone returns the detection rectangle of v for a collision box and facing.
func (v AttackVariant) Zone(box common.Rect, facing Facing) common.Rect {
	zone := common.Rect{Y: box.Top() + v.OffsetY, Width: v.Width, Height: v.Height}
	if facing == FacingLeft {
		zone.X = box.Left() - v.OffsetX - v.Width
	} else {
		zone.X = box.Right() + v.OffsetX
	}
	return zone
}
