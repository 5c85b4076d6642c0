package component

// Player is the controllable character.
type Player struct {
	// JumpSpeed is the upward direction set by a jump.
	JumpSpeed float64
	// Knockback is subtracted from Direction.Y on contact damage.
	Knockback float64
	// FallThreshold is the downward direction above which the player
	// counts as falling.
	FallThreshold float64

	// CommonStatus enables deriving idle/run/jump/fall from motion.
	CommonStatus bool
	// Combo is the next attack variant to play.
	Combo int
	Coins int
	// Flash is set while the invulnerability window is open.
	Flash bool
	// Outcome latches the first win or lose signal.
	Outcome Outcome
}

var PlayerComponent = NewComponent[Player]("player")

// Outcome is the level result.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Input stores per-frame input state for the player.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

var InputComponent = NewComponent[Input]("input")
