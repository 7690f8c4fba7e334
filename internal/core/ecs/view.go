package ecs

import (
	"fmt"

	"dungeon-engine/internal/core/types"
)

// View is either a ReadStorage or a WriteStorage; joins accept both.
type View[T any] interface {
	storage() *Storage[T]
}

// ReadStorage is a read-only view over one component kind.
type ReadStorage[T any] struct {
	s *Storage[T]
}

// WriteStorage allows in-place mutation of component values. Adding or
// removing components still goes through Commands.
type WriteStorage[T any] struct {
	s *Storage[T]
}

// Read fetches a read view. Inside a system it must be covered by the
// system's declared access.
func Read[T any](w *World) ReadStorage[T] {
	k := KindOf[T]()
	if w.scope != nil && !w.scope.access.canRead(k) {
		panic(fmt.Sprintf("ecs: system %s reads undeclared component %s", w.scope.system, k.kindName()))
	}
	return ReadStorage[T]{s: storageOf[T](w)}
}

// Write fetches a write view. Inside a system T must be declared as written.
func Write[T any](w *World) WriteStorage[T] {
	k := KindOf[T]()
	if w.scope != nil && !w.scope.access.canWrite(k) {
		panic(fmt.Sprintf("ecs: system %s writes undeclared component %s", w.scope.system, k.kindName()))
	}
	return WriteStorage[T]{s: storageOf[T](w)}
}

func (r ReadStorage[T]) storage() *Storage[T] { return r.s }

// Get returns a copy of the component.
func (r ReadStorage[T]) Get(id types.EntityID) (T, bool) {
	p, ok := r.s.get(id)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

func (r ReadStorage[T]) Has(id types.EntityID) bool { return r.s.has(id) }
func (r ReadStorage[T]) Len() int                   { return r.s.Len() }

// IDs returns the owning entities in storage order. The slice is a copy.
func (r ReadStorage[T]) IDs() []types.EntityID {
	out := make([]types.EntityID, len(r.s.ids))
	copy(out, r.s.ids)
	return out
}

func (w WriteStorage[T]) storage() *Storage[T] { return w.s }

// Get returns a pointer valid until the next structural change.
func (w WriteStorage[T]) Get(id types.EntityID) (*T, bool) { return w.s.get(id) }

func (w WriteStorage[T]) Has(id types.EntityID) bool { return w.s.has(id) }
func (w WriteStorage[T]) Len() int                   { return w.s.Len() }

// Read narrows the view.
func (w WriteStorage[T]) Read() ReadStorage[T] { return ReadStorage[T]{s: w.s} }
