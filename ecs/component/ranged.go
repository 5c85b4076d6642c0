package component

// RangedAttack spawns one Projectile archetype when Status shows Frame.
// Fired guards against a second shot in the same attack cycle.
type RangedAttack struct {
	Status     string
	Frame      int
	Projectile string
	OffsetX    float64
	OffsetY    float64
	Fired      bool
}

var RangedAttackComponent = NewComponent[RangedAttack]("ranged_attack")

// Projectile marks an entity that is removed when it touches the player.
type Projectile struct {
	Owner uint64
}

var ProjectileComponent = NewComponent[Projectile]("projectile")
