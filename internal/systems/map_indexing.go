package systems

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
)

// MapIndexing перестраивает Blocked и TileContent с нуля.
type MapIndexing struct{}

func (MapIndexing) Name() string { return "map_indexing" }

func (MapIndexing) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(ecs.KindOf[domain.Position](), ecs.KindOf[domain.BlocksTile]()),
	}
}

func (MapIndexing) Run(ctx *Context) {
	IndexMap(ctx.Map, ecs.Read[domain.Position](ctx.World), ecs.Read[domain.BlocksTile](ctx.World))
}

// IndexMap доступна и вне прохода: контроллер индексирует карту после
// зачистки мёртвых, чтобы ввод игрока видел актуальную занятость.
func IndexMap(m *domain.Map, positions ecs.ReadStorage[domain.Position], blockers ecs.ReadStorage[domain.BlocksTile]) {
	m.PopulateBlocked()
	m.ClearContent()

	for id, pos := range ecs.Each(positions) {
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		if blockers.Has(id) {
			m.Blocked[m.XYIdx(pos.X, pos.Y)] = true
		}
		m.AddContent(pos.X, pos.Y, id)
	}
}
