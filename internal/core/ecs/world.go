package ecs

import (
	"fmt"

	"dungeon-engine/internal/core/types"
)

// World is the top-level ECS container. It owns the entity pool and the typed
// component storages. Structural changes made while a pass is running must go
// through a Commands buffer and are applied by Flush after the pass ends.
type World struct {
	pool   *EntityPool
	stores map[Kind]removable
	order  []Kind

	inPass bool
	scope  *scope
}

type scope struct {
	system string
	access Access
}

func NewWorld() *World {
	return &World{
		pool:   NewEntityPool(),
		stores: make(map[Kind]removable, 16),
	}
}

// Register adds a storage for T. Registering twice is a no-op.
func Register[T any](w *World) {
	k := KindOf[T]()
	if _, ok := w.stores[k]; ok {
		return
	}
	w.stores[k] = newStorage[T]()
	w.order = append(w.order, k)
}

func storageOf[T any](w *World) *Storage[T] {
	k := KindOf[T]()
	s, ok := w.stores[k]
	if !ok {
		panic(fmt.Sprintf("ecs: component %s is not registered", k.kindName()))
	}
	return s.(*Storage[T])
}

// Alive reports whether id still refers to a live entity. This is the
// existence check for weak references held in components.
func (w *World) Alive(id types.EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.pool.Len() }

// InPass reports whether a system pass is currently running.
func (w *World) InPass() bool { return w.inPass }

// BeginPass marks the start of a pipeline pass. Until EndPass, immediate
// structural operations and Flush panic.
func (w *World) BeginPass() {
	if w.inPass {
		panic("ecs: pass already running")
	}
	w.inPass = true
}

func (w *World) EndPass() {
	if w.scope != nil {
		panic(fmt.Sprintf("ecs: pass ended while system %s is running", w.scope.system))
	}
	w.inPass = false
}

// Enter scopes storage access to the declared access of one system.
func (w *World) Enter(system string, access Access) {
	if !w.inPass {
		panic(fmt.Sprintf("ecs: system %s entered outside of a pass", system))
	}
	w.scope = &scope{system: system, access: access}
}

func (w *World) Leave() {
	w.scope = nil
}

func (w *World) mustBeIdle(op string) {
	if w.inPass {
		panic(fmt.Sprintf("ecs: %s during a pass, use Commands", op))
	}
}

// Spawn creates an entity immediately and applies inits in order.
func (w *World) Spawn(inits ...Init) types.EntityID {
	w.mustBeIdle("spawn")
	return w.spawn(inits)
}

func (w *World) spawn(inits []Init) types.EntityID {
	id := w.pool.Create()
	for _, init := range inits {
		init(w, id)
	}
	return id
}

// Despawn deletes an entity and all of its components immediately.
func (w *World) Despawn(id types.EntityID) bool {
	w.mustBeIdle("despawn")
	return w.despawn(id)
}

func (w *World) despawn(id types.EntityID) bool {
	if !w.pool.Alive(id) {
		return false
	}
	for _, k := range w.order {
		w.stores[k].remove(id)
	}
	return w.pool.Destroy(id)
}

// Attach inserts or replaces a component immediately.
func Attach[T any](w *World, id types.EntityID, v T) {
	w.mustBeIdle("attach " + KindOf[T]().kindName())
	if !w.pool.Alive(id) {
		return
	}
	storageOf[T](w).insert(id, v)
}

// Detach removes a component immediately.
func Detach[T any](w *World, id types.EntityID) bool {
	w.mustBeIdle("detach " + KindOf[T]().kindName())
	return storageOf[T](w).remove(id)
}

// Init is one step of entity construction, see With.
type Init func(w *World, id types.EntityID)

// With attaches v to the entity being built.
func With[T any](v T) Init {
	return func(w *World, id types.EntityID) {
		storageOf[T](w).insert(id, v)
	}
}

// Flush applies buffered commands in record order and resets the buffer.
// Commands that target entities deleted earlier in the same flush are dropped.
func (w *World) Flush(c *Commands) {
	if w.inPass {
		panic("ecs: flush during a pass")
	}
	for _, op := range c.ops {
		op(w)
	}
	c.ops = c.ops[:0]
}
