package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type within a process.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle is a typed key for one component store.
type ComponentHandle[T any] struct {
	id   ComponentID
	name string
}

// NewComponent allocates a fresh component id for T.
func NewComponent[T any](name ...string) ComponentHandle[T] {
	h := ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
	if len(name) > 0 {
		h.name = name[0]
	}
	return h
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Name() string {
	return h.name
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
