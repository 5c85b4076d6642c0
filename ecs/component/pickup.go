package component

// Coin is a collectible worth Amount.
type Coin struct {
	Kind   string
	Amount int
}

var CoinComponent = NewComponent[Coin]("coin")

// Goal ends the level with a win when the player touches it.
type Goal struct{}

var GoalComponent = NewComponent[Goal]("goal")
