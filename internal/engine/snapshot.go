package engine

import (
	"cmp"
	"slices"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/api"
)

const (
	wallColor  = "#666666"
	floorColor = "#333333"

	snapshotLogLines = 5
)

// Snapshot создаёт read-only "снимок" мира для рендерера.
// Вызывается только между проходами, мир не меняет.
func (g *Game) Snapshot() api.Snapshot {
	w, m := g.World, g.Map

	snap := api.Snapshot{
		RunState: g.ctrl.State().String(),
		Turn:     g.turn,
		Seed:     g.Seed,
		Grid:     api.GridMeta{Width: m.Width, Height: m.Height},
		Logs:     g.Log.Recent(snapshotLogLines),
		Dead:     g.dead,
	}

	// 1. Карта: только разведанное
	for idx, revealed := range m.Revealed {
		if !revealed {
			continue
		}
		x, y := m.IdxXY(idx)
		tv := api.TileView{X: x, Y: y, Symbol: ".", Color: floorColor, IsVisible: m.Visible[idx]}
		if m.Tiles[idx] == enums.TileWall {
			tv.Symbol, tv.Color, tv.IsWall = "#", wallColor, true
		}
		snap.Map = append(snap.Map, tv)
	}

	// 2. Сущности на видимых клетках
	names := ecs.Read[domain.Name](w)
	stats := ecs.Read[domain.CombatStats](w)
	players := ecs.Read[domain.Player](w)
	monsters := ecs.Read[domain.Monster](w)

	for row := range ecs.Join2(ecs.Read[domain.Position](w), ecs.Read[domain.Renderable](w)) {
		pos, r := row.A, row.B
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.XYIdx(pos.X, pos.Y)] {
			continue
		}
		ev := api.EntityView{
			ID:     row.ID,
			Type:   api.EntityTypeItem,
			X:      pos.X,
			Y:      pos.Y,
			Symbol: string(r.Glyph.Rune()),
			Color:  r.Glyph.Fg().String(),
			Bg:     r.Bg.String(),
			Order:  r.Order,
		}
		switch {
		case players.Has(row.ID):
			ev.Type = api.EntityTypePlayer
		case monsters.Has(row.ID):
			ev.Type = api.EntityTypeMonster
		}
		if n, ok := names.Get(row.ID); ok {
			ev.Name = n.Name
		}
		if s, ok := stats.Get(row.ID); ok {
			ev.Stats = statusView(s)
		}
		snap.Entities = append(snap.Entities, ev)
	}
	// Стабильная сортировка: при равном Order сохраняется порядок хранилища
	slices.SortStableFunc(snap.Entities, func(a, b api.EntityView) int {
		return cmp.Compare(b.Order, a.Order)
	})

	// 3. Статус и рюкзак игрока
	if s, ok := stats.Get(g.Player); ok {
		snap.Player = statusView(s)
	}
	snap.Backpack = g.backpack(names)

	return snap
}

func (g *Game) backpack(names ecs.ReadStorage[domain.Name]) []api.ItemView {
	potions := ecs.Read[domain.Potion](g.World)
	renders := ecs.Read[domain.Renderable](g.World)

	items := make([]api.ItemView, 0)
	for id, pack := range ecs.Each(ecs.Read[domain.InBackpack](g.World)) {
		if pack.Owner != g.Player {
			continue
		}
		items = append(items, itemView(id, names, potions, renders))
	}
	return items
}

func itemView(id types.EntityID, names ecs.ReadStorage[domain.Name], potions ecs.ReadStorage[domain.Potion], renders ecs.ReadStorage[domain.Renderable]) api.ItemView {
	iv := api.ItemView{ID: id}
	if n, ok := names.Get(id); ok {
		iv.Name = n.Name
	}
	if p, ok := potions.Get(id); ok {
		iv.HealAmount = p.HealAmount
	}
	if r, ok := renders.Get(id); ok {
		iv.Symbol = string(r.Glyph.Rune())
		iv.Color = r.Glyph.Fg().String()
		iv.Bg = r.Bg.String()
	}
	return iv
}

func statusView(s domain.CombatStats) *api.StatusView {
	return &api.StatusView{HP: s.HP, MaxHP: s.MaxHP, Defense: s.Defense, Power: s.Power}
}
