package component

import "fmt"

// EnemyKind selects the behavior strategy of an enemy.
type EnemyKind int

const (
	EnemyPatroller EnemyKind = iota
	EnemyAmbusher
	EnemyCharger
	EnemyTurret
)

var enemyKindNames = map[EnemyKind]string{
	EnemyPatroller: "patroller",
	EnemyAmbusher:  "ambusher",
	EnemyCharger:   "charger",
	EnemyTurret:    "turret",
}

func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// ParseEnemyKind maps a kind name to its EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	for k, name := range enemyKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

// Enemy holds the aggro tuning and guard flags shared by every strategy.
type Enemy struct {
	Kind          EnemyKind
	DefaultStatus string

	Speed       float64
	AttackSpeed float64

	// AggroX and AggroY bound the per-axis distance window; AggroDistance
	// is a radius used by turrets.
	AggroX        float64
	AggroY        float64
	AggroDistance float64

	HasAttacked bool
}

var EnemyComponent = NewComponent[Enemy]("enemy")
