package ecs

import (
	"fmt"

	"dungeon-engine/internal/core/types"
)

// Kind identifies a component type in the registry without reflection.
type Kind interface {
	kindName() string
}

type kindKey[T any] struct{}

func (kindKey[T]) kindName() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// KindOf returns the registry key of component type T.
func KindOf[T any]() Kind { return kindKey[T]{} }

// KindName is used in logs and panic messages.
func KindName(k Kind) string { return k.kindName() }

// removable is implemented by every storage so the world can drop all of an
// entity's components on delete.
type removable interface {
	remove(id types.EntityID) bool
	has(id types.EntityID) bool
	Len() int
}

// Storage is a dense sparse-set store for one component kind. Iteration order
// is the insertion order, perturbed only by swap-removal, so a given sequence
// of operations always yields the same order.
type Storage[T any] struct {
	ids    []types.EntityID
	dense  []T
	sparse map[types.EntityID]int
}

func newStorage[T any]() *Storage[T] {
	return &Storage[T]{
		ids:    make([]types.EntityID, 0, 64),
		dense:  make([]T, 0, 64),
		sparse: make(map[types.EntityID]int, 64),
	}
}

func (s *Storage[T]) insert(id types.EntityID, v T) {
	if i, ok := s.sparse[id]; ok {
		s.dense[i] = v
		return
	}
	s.sparse[id] = len(s.dense)
	s.ids = append(s.ids, id)
	s.dense = append(s.dense, v)
}

func (s *Storage[T]) remove(id types.EntityID) bool {
	i, ok := s.sparse[id]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.ids[i] = s.ids[last]
		s.sparse[s.ids[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.ids = s.ids[:last]
	delete(s.sparse, id)
	return true
}

func (s *Storage[T]) get(id types.EntityID) (*T, bool) {
	i, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

func (s *Storage[T]) has(id types.EntityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *Storage[T]) Len() int { return len(s.dense) }
