package actions

import "dungeon-engine/internal/engine/handlers"

// Меню не тратят ход: контроллер просто уходит в модальное состояние.

func HandleOpenInventory(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: handlers.OutcomeInventory}, nil
}

func HandleOpenDropMenu(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: handlers.OutcomeDropMenu}, nil
}

func HandleCancel(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Next: handlers.OutcomeCancel}, nil
}
