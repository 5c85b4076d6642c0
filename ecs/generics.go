package ecs

import "github.com/milk9111/treasurehunt/ecs/component"

// Add stores value for e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(handle.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.store(handle.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.store(handle.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value := w.store(handle.ID(), false).Get(e)
	if value == nil {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok && cast != nil
}

// First returns the first entity carrying handle, typically a singleton
// such as the player.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	s := w.store(handle.ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}

// Count returns how many entities carry handle.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	return w.store(handle.ID(), false).Len()
}

// ForEach visits every entity carrying handle. Iteration runs over a
// snapshot: entities created during the walk are not visited, and entities
// that lose the component or die before their turn are skipped.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.store(handle.ID(), false).Snapshot() {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ha.ID(), false), w.store(hb.ID(), false)
	if sa.Len() == 0 || sb.Len() == 0 {
		return
	}
	driver := sa
	if sb.Len() < sa.Len() {
		driver = sb
	}
	for _, e := range driver.Snapshot() {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ha, hb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, hc); ok {
			fn(e, a, b, c)
		}
	})
}
