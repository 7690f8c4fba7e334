package handlers

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
)

// Context передает хендлеру состояние мира. Хендлеры вызываются между
// проходами, поэтому могут вешать намерения на игрока напрямую.
type Context struct {
	World  *ecs.World
	Map    *domain.Map
	Player types.EntityID
}

// Outcome - куда контроллер должен перейти после команды.
type Outcome uint8

const (
	// OutcomeNone - ход не потрачен, остаёмся в ожидании ввода.
	OutcomeNone Outcome = iota
	// OutcomeTurn - на игрока повешено намерение, начинается ход.
	OutcomeTurn
	OutcomeInventory
	OutcomeDropMenu
	// OutcomeCancel - закрыть меню.
	OutcomeCancel
)

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg  string // Строка для журнала игрока, может быть пустой
	Next Outcome
}

// HandlerFunc - это контракт для любой команды (MOVE, PICKUP, etc).
type HandlerFunc func(ctx Context, cmd *domain.Command) (Result, error)

// EmptyResult - ход не потрачен, сообщения нет.
func EmptyResult() Result {
	return Result{}
}

// Turn - ход потрачен.
func Turn() Result {
	return Result{Next: OutcomeTurn}
}

// Refuse - команда отклонена с сообщением для игрока.
func Refuse(msg string) Result {
	return Result{Msg: msg}
}
