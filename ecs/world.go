package ecs

import (
	"time"

	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/timer"
)

// World owns entities, their component stores, the frame clock and the
// event queue. It is not safe for concurrent use; a simulation advances it
// from a single goroutine.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    timer.Clock

	doomed    []Entity
	doomedSet map[Entity]struct{}
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		doomedSet: make(map[Entity]struct{}),
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports false for entities that are already gone.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	delete(w.doomedSet, e)
	return w.entities.destroy(e)
}

// QueueDestroy marks e for removal at the next Flush. The entity stays
// alive and visible to queries until then.
func QueueDestroy(w *World, e Entity) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	if w.doomedSet == nil {
		w.doomedSet = make(map[Entity]struct{})
	}
	if _, ok := w.doomedSet[e]; ok {
		return
	}
	w.doomedSet[e] = struct{}{}
	w.doomed = append(w.doomed, e)
}

// Doomed reports whether e is queued for destruction.
func Doomed(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.doomedSet[e]
	return ok
}

// Flush destroys every queued entity and returns how many were removed.
func Flush(w *World) int {
	if w == nil || len(w.doomed) == 0 {
		return 0
	}
	queued := w.doomed
	w.doomed = nil
	n := 0
	for _, e := range queued {
		if DestroyEntity(w, e) {
			n++
		}
	}
	clear(w.doomedSet)
	return n
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the simulation clock.
func (w *World) Clock() *timer.Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// Now returns the elapsed simulation time.
func (w *World) Now() time.Duration {
	return w.Clock().Now()
}

// DT returns the current frame length in seconds.
func (w *World) DT() float64 {
	return w.Clock().DT()
}
