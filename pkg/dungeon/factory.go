package dungeon

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
)

// PlayerSpec - стартовые характеристики героя.
type PlayerSpec struct {
	Name       string `toml:"name"`
	HP         int    `toml:"hp"`
	Defense    int    `toml:"defense"`
	Power      int    `toml:"power"`
	SightRange int    `toml:"sight_range"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{Name: "Player", HP: 30, Defense: 2, Power: 5, SightRange: 8}
}

// CreatePlayer создаёт героя на заданной позиции.
func CreatePlayer(w *ecs.World, pos domain.Position, spec PlayerSpec) types.EntityID {
	return w.Spawn(
		ecs.With(pos),
		ecs.With(domain.Renderable{
			Glyph: types.MakeGlyph('@', types.ColorYellow),
			Bg:    types.ColorBlack,
			Order: OrderPlayer,
		}),
		ecs.With(domain.Player{}),
		ecs.With(domain.Name{Name: spec.Name}),
		ecs.With(domain.NewViewshed(spec.SightRange)),
		ecs.With(domain.BlocksTile{}),
		ecs.With(domain.CombatStats{MaxHP: spec.HP, HP: spec.HP, Defense: spec.Defense, Power: spec.Power}),
	)
}
