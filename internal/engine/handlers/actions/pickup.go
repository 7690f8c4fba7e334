package actions

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine/handlers"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета с земли
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	pos, ok := ecs.Read[domain.Position](ctx.World).Get(ctx.Player)
	if !ok {
		return handlers.EmptyResult(), nil
	}

	for row := range ecs.Join2(ecs.Read[domain.Item](ctx.World), ecs.Read[domain.Position](ctx.World)) {
		if *row.B != pos {
			continue
		}
		ecs.Attach(ctx.World, ctx.Player, domain.WantsToPickupItem{Item: row.ID, CollectedBy: ctx.Player})
		return handlers.Turn(), nil
	}

	return handlers.Refuse("There is nothing here to pick up."), nil
}
