package ecs

// EventType names an event emitted by the simulation.
type EventType string

const (
	EventDamageTaken   EventType = "damage_taken"
	EventEnemyDefeated EventType = "enemy_defeated"
	EventCoinCollected EventType = "coin_collected"
	EventWin           EventType = "win"
	EventLose          EventType = "lose"
)

// Event is a simulation event for collaborators outside the core.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// DamageData accompanies EventDamageTaken and EventEnemyDefeated.
type DamageData struct {
	Amount    int
	Remaining int
}

// CoinData accompanies EventCoinCollected.
type CoinData struct {
	Kind   string
	Amount int
	Total  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
