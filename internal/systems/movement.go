package systems

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// Movement применяет WantsToMove в порядке хранилища. Клетка проверяется по
// живому Blocked, поэтому двое не встанут на одну клетку. Намерение
// снимается в любом случае.
type Movement struct{}

func (Movement) Name() string { return "movement" }

func (Movement) Access() ecs.Access {
	return ecs.Access{
		Reads:  kinds(ecs.KindOf[domain.WantsToMove](), ecs.KindOf[domain.BlocksTile]()),
		Writes: kinds(ecs.KindOf[domain.Position](), ecs.KindOf[domain.Viewshed]()),
	}
}

func (Movement) Run(ctx *Context) {
	positions := ecs.Write[domain.Position](ctx.World)
	viewsheds := ecs.Write[domain.Viewshed](ctx.World)
	blockers := ecs.Read[domain.BlocksTile](ctx.World)

	for id, want := range ecs.Each(ecs.Read[domain.WantsToMove](ctx.World)) {
		ecs.Remove[domain.WantsToMove](ctx.Cmds, id)

		pos, ok := positions.Get(id)
		if !ok || !isStep(want.Dx, want.Dy) {
			continue
		}

		from := *pos
		to := from.Shift(want.Dx, want.Dy)
		if ctx.Map.IsBlocked(to.X, to.Y) {
			logger.Log.WithFields(logrus.Fields{
				"component": "movement_system",
				"entity":    id.String(),
				"to":        to,
			}).Debug("Move blocked.")
			continue
		}

		*pos = to
		if blockers.Has(id) {
			ctx.Map.MoveBlocker(from, to)
		}
		if vs, ok := viewsheds.Get(id); ok {
			vs.Dirty = true
		}
	}
}

func isStep(dx, dy int) bool {
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0)
}
