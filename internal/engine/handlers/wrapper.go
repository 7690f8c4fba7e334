package handlers

import (
	"fmt"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
)

// DirectionHandlerFunc - хендлер, которому нужен только шаг (MOVE).
type DirectionHandlerFunc func(ctx Context, dx, dy int) (Result, error)

// ItemHandlerFunc - хендлер для предмета, уже проверенного на владение.
type ItemHandlerFunc func(ctx Context, item types.EntityID) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT, INVENTORY).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithDirection проверяет форму команды и передаёт шаг.
func WithDirection(handler DirectionHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd *domain.Command) (Result, error) {
		if err := cmd.Validate(); err != nil {
			return Result{}, fmt.Errorf("validation failed: %w", err)
		}
		return handler(ctx, cmd.Dx, cmd.Dy)
	}
}

// WithBackpackItem пропускает только предметы из рюкзака игрока.
// Чужой или несуществующий предмет - отказ с сообщением, не ошибка.
func WithBackpackItem(handler ItemHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd *domain.Command) (Result, error) {
		if err := cmd.Validate(); err != nil {
			return Result{}, fmt.Errorf("validation failed: %w", err)
		}
		if !ctx.World.Alive(cmd.Item) {
			return Refuse("That item no longer exists."), nil
		}
		pack, ok := ecs.Read[domain.InBackpack](ctx.World).Get(cmd.Item)
		if !ok || pack.Owner != ctx.Player {
			return Refuse("You are not carrying that."), nil
		}
		return handler(ctx, cmd.Item)
	}
}

// WithEmptyPayload - обертка для команд без данных.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ *domain.Command) (Result, error) {
		return handler(ctx)
	}
}
