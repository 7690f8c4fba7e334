package actions

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine/handlers"
)

// HandleMove: шаг в клетку с живым монстром - атака, в свободную - WantsToMove,
// в стену или занятую клетку - ход не тратится.
func HandleMove(ctx handlers.Context, dx, dy int) (handlers.Result, error) {
	pos, ok := ecs.Read[domain.Position](ctx.World).Get(ctx.Player)
	if !ok {
		return handlers.EmptyResult(), nil
	}
	target := pos.Shift(dx, dy)

	monsters := ecs.Read[domain.Monster](ctx.World)
	stats := ecs.Read[domain.CombatStats](ctx.World)
	for _, id := range ctx.Map.EntitiesAt(target.X, target.Y) {
		if !ctx.World.Alive(id) || !monsters.Has(id) {
			continue
		}
		if s, ok := stats.Get(id); ok && !s.IsDead() {
			ecs.Attach(ctx.World, ctx.Player, domain.WantsToMelee{Target: id})
			return handlers.Turn(), nil
		}
	}

	if ctx.Map.IsBlocked(target.X, target.Y) {
		return handlers.EmptyResult(), nil
	}

	ecs.Attach(ctx.World, ctx.Player, domain.WantsToMove{Dx: dx, Dy: dy})
	return handlers.Turn(), nil
}
