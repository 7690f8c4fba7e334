package systems

import (
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
)

// System - единица логики, выполняемая один раз за проход конвейера.
// Access объявляет, какие хранилища система читает и пишет; обращение вне
// объявленного доступа - паника.
type System interface {
	Name() string
	Access() ecs.Access
	Run(ctx *Context)
}

// Context - ресурсы-синглтоны, передаваемые каждой системе явно.
type Context struct {
	World *ecs.World
	Cmds  *ecs.Commands

	Map      *domain.Map
	Log      *domain.GameLog
	Player   types.EntityID
	RunState enums.RunState
}

func kinds(ks ...ecs.Kind) []ecs.Kind { return ks }
