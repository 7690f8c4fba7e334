package systems

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// MonsterAI выдаёт намерения монстрам, которые видят игрока. Работает только
// в ход монстров. Решение каждого монстра зависит лишь от его состояния,
// карты и позиции игрока: намерения соседей до flush не видны.
type MonsterAI struct{}

func (MonsterAI) Name() string { return "monster_ai" }

func (MonsterAI) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(
			ecs.KindOf[domain.Monster](),
			ecs.KindOf[domain.Viewshed](),
			ecs.KindOf[domain.Position](),
			ecs.KindOf[domain.CombatStats](),
		),
	}
}

func (MonsterAI) Run(ctx *Context) {
	if ctx.RunState != enums.RunStateMonsterTurn {
		return
	}

	positions := ecs.Read[domain.Position](ctx.World)
	stats := ecs.Read[domain.CombatStats](ctx.World)

	if !ctx.World.Alive(ctx.Player) {
		return
	}
	target, ok := positions.Get(ctx.Player)
	if !ok {
		return
	}

	for row := range ecs.Join3(ecs.Read[domain.Monster](ctx.World), ecs.Read[domain.Viewshed](ctx.World), positions) {
		if s, ok := stats.Get(row.ID); ok && s.IsDead() {
			continue
		}

		state, dx, dy := Decide(ctx.Map, *row.C, row.B, target)
		switch state {
		case enums.AIStateAttack:
			ecs.Insert(ctx.Cmds, row.ID, domain.WantsToMelee{Target: ctx.Player})
		case enums.AIStateApproach:
			ecs.Insert(ctx.Cmds, row.ID, domain.WantsToMove{Dx: dx, Dy: dy})
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"entity":    row.ID.String(),
			"pos":       *row.C,
			"decision":  state.String(),
		}).Debug("Monster decided.")
	}
}

// Decide - жадный шаг к цели без обхода препятствий.
//
//   - цель не видна: IDLE
//   - расстояние Чебышёва <= 1: ATTACK
//   - клетка шага занята: BLOCKED, монстр стоит
//   - иначе APPROACH на (dx, dy)
func Decide(m *domain.Map, self domain.Position, vs *domain.Viewshed, target domain.Position) (enums.AIState, int, int) {
	if !m.InBounds(target.X, target.Y) || !vs.CanSee(m.XYIdx(target.X, target.Y)) {
		return enums.AIStateIdle, 0, 0
	}
	if self.ChebyshevTo(target) <= 1 {
		return enums.AIStateAttack, 0, 0
	}

	dx, dy := sign(target.X-self.X), sign(target.Y-self.Y)
	next := self.Shift(dx, dy)
	if m.IsBlocked(next.X, next.Y) {
		return enums.AIStateBlocked, 0, 0
	}
	return enums.AIStateApproach, dx, dy
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
