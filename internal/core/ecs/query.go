package ecs

import (
	"iter"
	"slices"

	"dungeon-engine/internal/core/types"
)

// Row2 is one entity that owns both joined kinds.
type Row2[T1, T2 any] struct {
	ID types.EntityID
	A  *T1
	B  *T2
}

type Row3[T1, T2, T3 any] struct {
	ID types.EntityID
	A  *T1
	B  *T2
	C  *T3
}

type Row4[T1, T2, T3, T4 any] struct {
	ID types.EntityID
	A  *T1
	B  *T2
	C  *T3
	D  *T4
}

type keyed interface {
	Len() int
	keys() []types.EntityID
}

func (s *Storage[T]) keys() []types.EntityID { return s.ids }

// driver picks the smallest storage and snapshots its ids, so the join stays
// stable even if a caller outside a pass mutates while iterating.
func driver(stores ...keyed) []types.EntityID {
	best := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < best.Len() {
			best = s
		}
	}
	return slices.Clone(best.keys())
}

// Each yields every entity in a single storage, in storage order.
func Each[T any](v View[T]) iter.Seq2[types.EntityID, *T] {
	return func(yield func(types.EntityID, *T) bool) {
		s := v.storage()
		for _, id := range slices.Clone(s.ids) {
			p, ok := s.get(id)
			if !ok {
				continue
			}
			if !yield(id, p) {
				return
			}
		}
	}
}

// Join2 yields entities that have both components. Pointers obtained through a
// ReadStorage must not be written through.
func Join2[T1, T2 any](a View[T1], b View[T2]) iter.Seq[Row2[T1, T2]] {
	return func(yield func(Row2[T1, T2]) bool) {
		sa, sb := a.storage(), b.storage()
		for _, id := range driver(sa, sb) {
			pa, ok := sa.get(id)
			if !ok {
				continue
			}
			pb, ok := sb.get(id)
			if !ok {
				continue
			}
			if !yield(Row2[T1, T2]{ID: id, A: pa, B: pb}) {
				return
			}
		}
	}
}

func Join3[T1, T2, T3 any](a View[T1], b View[T2], c View[T3]) iter.Seq[Row3[T1, T2, T3]] {
	return func(yield func(Row3[T1, T2, T3]) bool) {
		sa, sb, sc := a.storage(), b.storage(), c.storage()
		for _, id := range driver(sa, sb, sc) {
			pa, ok := sa.get(id)
			if !ok {
				continue
			}
			pb, ok := sb.get(id)
			if !ok {
				continue
			}
			pc, ok := sc.get(id)
			if !ok {
				continue
			}
			if !yield(Row3[T1, T2, T3]{ID: id, A: pa, B: pb, C: pc}) {
				return
			}
		}
	}
}

func Join4[T1, T2, T3, T4 any](a View[T1], b View[T2], c View[T3], d View[T4]) iter.Seq[Row4[T1, T2, T3, T4]] {
	return func(yield func(Row4[T1, T2, T3, T4]) bool) {
		sa, sb, sc, sd := a.storage(), b.storage(), c.storage(), d.storage()
		for _, id := range driver(sa, sb, sc, sd) {
			pa, ok := sa.get(id)
			if !ok {
				continue
			}
			pb, ok := sb.get(id)
			if !ok {
				continue
			}
			pc, ok := sc.get(id)
			if !ok {
				continue
			}
			pd, ok := sd.get(id)
			if !ok {
				continue
			}
			if !yield(Row4[T1, T2, T3, T4]{ID: id, A: pa, B: pb, C: pc, D: pd}) {
				return
			}
		}
	}
}
