package actions

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine/handlers"
)

// HandleDrop вешает WantsToDropItem. Владение проверено обёрткой.
func HandleDrop(ctx handlers.Context, item types.EntityID) (handlers.Result, error) {
	ecs.Attach(ctx.World, ctx.Player, domain.WantsToDropItem{Item: item})
	return handlers.Turn(), nil
}
