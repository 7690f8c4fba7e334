package systems

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// Damage вычитает накопленный урон из HP. HP может уйти в минус, смертью
// занимается DeleteTheDead после flush.
type Damage struct{}

func (Damage) Name() string { return "damage" }

func (Damage) Access() ecs.Access {
	return ecs.Access{
		Reads:  kinds(ecs.KindOf[domain.SufferDamage]()),
		Writes: kinds(ecs.KindOf[domain.CombatStats]()),
	}
}

func (Damage) Run(ctx *Context) {
	stats := ecs.Write[domain.CombatStats](ctx.World)

	for id, sd := range ecs.Each(ecs.Read[domain.SufferDamage](ctx.World)) {
		applied := len(sd.Amounts)
		if s, ok := stats.Get(id); ok {
			s.HP -= sd.Total()
		}

		// Снимаем только применённые записи: удар, слитый в этот же flush,
		// доживёт до следующего прохода.
		ecs.Modify(ctx.Cmds, id, func(p *domain.SufferDamage) bool {
			p.Amounts = p.Amounts[min(applied, len(p.Amounts)):]
			return len(p.Amounts) > 0
		})
	}
}

// DeleteTheDead удаляет сущности с HP <= 0. Вызывается вне прохода, сразу
// после flush. Игрок не удаляется: возвращается true, решение за контроллером.
func DeleteTheDead(ctx *Context) bool {
	w := ctx.World
	names := ecs.Read[domain.Name](w)
	players := ecs.Read[domain.Player](w)

	playerDead := false
	for id, s := range ecs.Each(ecs.Read[domain.CombatStats](w)) {
		if !s.IsDead() {
			continue
		}
		if players.Has(id) {
			if !playerDead {
				ctx.Log.Add("You are dead.")
			}
			playerDead = true
			continue
		}

		ctx.Log.Add("%s is dead", nameOf(names, id))
		w.Despawn(id)

		logger.Log.WithFields(logrus.Fields{
			"component": "damage_system",
			"entity":    id.String(),
		}).Info("Entity removed.")
	}
	return playerDead
}
