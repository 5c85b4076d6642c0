package component

import (
	"time"

	"github.com/milk9111/treasurehunt/timer"
)

// Timer names shared by spawners and systems.
const (
	TimerInvulnerable   = "invulnerable"
	TimerRemoval        = "removal"
	TimerAttackDuration = "attack_duration"
	TimerAttackCooldown = "attack_cooldown"
	TimerAttackReset    = "attack_reset"
	TimerLifetime       = "lifetime"
)

// Timers holds an entity's named timers, updated in insertion order.
type Timers struct {
	names  []string
	byName map[string]*timer.Timer
}

var TimersComponent = NewComponent[Timers]("timers")

// Set adds or replaces the named timer.
func (t *Timers) Set(name string, tm *timer.Timer) {
	if t == nil || tm == nil {
		return
	}
	if t.byName == nil {
		t.byName = make(map[string]*timer.Timer)
	}
	if _, ok := t.byName[name]; !ok {
		t.names = append(t.names, name)
	}
	t.byName[name] = tm
}

// Get returns the named timer or nil.
func (t *Timers) Get(name string) *timer.Timer {
	if t == nil {
		return nil
	}
	return t.byName[name]
}

// Activate arms the named timer and reports whether it exists.
func (t *Timers) Activate(name string, now time.Duration) bool {
	tm := t.Get(name)
	if tm == nil {
		return false
	}
	tm.Activate(now)
	return true
}

// Pending reports whether the named timer is armed.
func (t *Timers) Pending(name string) bool {
	return t.Get(name).Pending()
}

// Clear disarms the named timer.
func (t *Timers) Clear(name string) {
	t.Get(name).Clear()
}

// Names returns the timer names in update order.
func (t *Timers) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Update advances every timer to now.
func (t *Timers) Update(now time.Duration) {
	if t == nil {
		return
	}
	for _, name := range t.names {
		t.byName[name].Update(now)
	}
}
