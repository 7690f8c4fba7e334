package ecs

import "dungeon-engine/internal/core/types"

// Commands buffers structural changes requested while a pass runs. The buffer
// is drained by World.Flush exactly once, in record order.
type Commands struct {
	ops []func(w *World)
}

func NewCommands() *Commands {
	return &Commands{ops: make([]func(w *World), 0, 32)}
}

// Len returns the number of pending commands.
func (c *Commands) Len() int { return len(c.ops) }

// Create records a new entity built from inits.
func (c *Commands) Create(inits ...Init) {
	c.ops = append(c.ops, func(w *World) {
		w.spawn(inits)
	})
}

// Delete records removal of an entity and all its components.
func (c *Commands) Delete(id types.EntityID) {
	c.ops = append(c.ops, func(w *World) {
		w.despawn(id)
	})
}

// Insert records an insert-or-replace of T on id.
func Insert[T any](c *Commands, id types.EntityID, v T) {
	c.ops = append(c.ops, func(w *World) {
		if w.pool.Alive(id) {
			storageOf[T](w).insert(id, v)
		}
	})
}

// Remove records removal of T from id.
func Remove[T any](c *Commands, id types.EntityID) {
	c.ops = append(c.ops, func(w *World) {
		storageOf[T](w).remove(id)
	})
}

// Upsert inserts v, or merges it into the value already present at flush time.
func Upsert[T any](c *Commands, id types.EntityID, v T, merge func(existing *T, v T)) {
	c.ops = append(c.ops, func(w *World) {
		if !w.pool.Alive(id) {
			return
		}
		s := storageOf[T](w)
		if p, ok := s.get(id); ok {
			merge(p, v)
			return
		}
		s.insert(id, v)
	})
}

// Modify edits T on id at flush time. fn returning false removes the component.
// A missing component is a no-op.
func Modify[T any](c *Commands, id types.EntityID, fn func(*T) bool) {
	c.ops = append(c.ops, func(w *World) {
		s := storageOf[T](w)
		p, ok := s.get(id)
		if !ok {
			return
		}
		if !fn(p) {
			s.remove(id)
		}
	})
}
