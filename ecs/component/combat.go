package component

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// CanHit reports whether an attack from f may damage target. Neutral hits
// and is hit by everyone.
func (f Faction) CanHit(target Faction) bool {
	if f == FactionNeutral || target == FactionNeutral {
		return true
	}
	return f != target
}

// ParseFaction maps "player" and "enemy"; anything else is neutral.
func ParseFaction(s string) Faction {
	switch s {
	case "player":
		return FactionPlayer
	case "enemy":
		return FactionEnemy
	default:
		return FactionNeutral
	}
}

// Health tracks hit points. Dead latches once health reaches zero.
type Health struct {
	Current int
	Max     int
	Dead    bool
}

var HealthComponent = NewComponent[Health]("health")

// Attackable registers an entity as a valid target for attacks.
type Attackable struct {
	Faction Faction
}

var AttackableComponent = NewComponent[Attackable]("attackable")

// DamageDealer deals Damage to the player on hitbox contact.
type DamageDealer struct {
	Damage  int
	Faction Faction
}

var DamageDealerComponent = NewComponent[DamageDealer]("damage_dealer")
