package ecs

import "dungeon-engine/internal/core/types"

// EntityPool manages entity allocation with generational indices and a free list.
// Generations start at 1 so a live entity never packs to types.NilEntityID.
type EntityPool struct {
	generations []uint16
	live        []bool
	freeList    []uint32
	count       int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint16, 0, 256),
		live:        make([]bool, 0, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

func (p *EntityPool) Create() types.EntityID {
	p.count++
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		p.live[idx] = true
		return types.PackEntityID(p.generations[idx], idx)
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	p.live = append(p.live, true)
	return types.PackEntityID(1, idx)
}

func (p *EntityPool) Alive(id types.EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.live[idx] && p.generations[idx] == id.Generation()
}

// Destroy frees the slot and bumps its generation. Stale ids are ignored.
func (p *EntityPool) Destroy(id types.EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.generations[idx]++
	if p.generations[idx] == 0 {
		p.generations[idx] = 1
	}
	p.live[idx] = false
	p.freeList = append(p.freeList, idx)
	p.count--
	return true
}

// Len returns the number of live entities.
func (p *EntityPool) Len() int { return p.count }
