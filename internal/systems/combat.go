package systems

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// MeleeCombat превращает WantsToMelee в SufferDamage цели. Урон копится через
// Upsert, поэтому несколько ударов по одной цели за проход не теряются.
// Дистанция проверяется в момент разрешения: цель, успевшая отойти, не
// получает удар.
type MeleeCombat struct{}

func (MeleeCombat) Name() string { return "melee_combat" }

func (MeleeCombat) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(
			ecs.KindOf[domain.WantsToMelee](),
			ecs.KindOf[domain.CombatStats](),
			ecs.KindOf[domain.Name](),
			ecs.KindOf[domain.Position](),
		),
	}
}

func (MeleeCombat) Run(ctx *Context) {
	stats := ecs.Read[domain.CombatStats](ctx.World)
	names := ecs.Read[domain.Name](ctx.World)
	positions := ecs.Read[domain.Position](ctx.World)

	for attacker, want := range ecs.Each(ecs.Read[domain.WantsToMelee](ctx.World)) {
		ecs.Remove[domain.WantsToMelee](ctx.Cmds, attacker)

		a, ok := stats.Get(attacker)
		if !ok || a.IsDead() {
			continue
		}
		if !ctx.World.Alive(want.Target) {
			logger.Log.WithFields(logrus.Fields{
				"component": "combat_system",
				"attacker":  attacker.String(),
				"target":    want.Target.String(),
			}).Debug("Melee target is gone.")
			continue
		}
		d, ok := stats.Get(want.Target)
		if !ok || d.IsDead() {
			continue
		}
		from, okA := positions.Get(attacker)
		to, okT := positions.Get(want.Target)
		if !okA || !okT || from.ChebyshevTo(to) > 1 {
			logger.Log.WithFields(logrus.Fields{
				"component": "combat_system",
				"attacker":  attacker.String(),
				"target":    want.Target.String(),
			}).Debug("Melee target out of reach.")
			continue
		}

		dmg := domain.MeleeDamage(a.Power, d.Defense)
		ecs.Upsert(ctx.Cmds, want.Target, domain.NewSufferDamage(dmg), domain.MergeDamage)
		ctx.Log.Add("%s hits %s, for %d hp.", nameOf(names, attacker), nameOf(names, want.Target), dmg)
	}
}

func nameOf(names ecs.ReadStorage[domain.Name], id types.EntityID) string {
	if n, ok := names.Get(id); ok && n.Name != "" {
		return n.Name
	}
	return id.String()
}
