package actions

import "dungeon-engine/internal/engine/handlers"

// HandleWait тратит ход, ничего не делая.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Turn(), nil
}
