package actions

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine/handlers"
)

// HandleDrink вешает WantsToDrinkPotion. Владение проверено обёрткой.
func HandleDrink(ctx handlers.Context, item types.EntityID) (handlers.Result, error) {
	if !ecs.Read[domain.Potion](ctx.World).Has(item) {
		return handlers.Refuse("You can't drink that."), nil
	}
	ecs.Attach(ctx.World, ctx.Player, domain.WantsToDrinkPotion{Potion: item})
	return handlers.Turn(), nil
}
