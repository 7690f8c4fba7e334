package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)


// ItemCollection кладёт предмет в рюкзак: снимает Position, ставит InBackpack.
// Один предмет за проход достаётся первому по порядку хранилища.
type ItemCollection struct{}

func (ItemCollection) Name() string { return "item_collection" }

func (ItemCollection) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(
			ecs.KindOf[domain.WantsToPickupItem](),
			ecs.KindOf[domain.Item](),
			ecs.KindOf[domain.Position](),
			ecs.KindOf[domain.Name](),
			ecs.KindOf[domain.Player](),
		),
	}
}

func (ItemCollection) Run(ctx *Context) {
	items := ecs.Read[domain.Item](ctx.World)
	positions := ecs.Read[domain.Position](ctx.World)
	names := ecs.Read[domain.Name](ctx.World)
	players := ecs.Read[domain.Player](ctx.World)
	claimed := mapset.New[types.EntityID]()

	for id, want := range ecs.Each(ecs.Read[domain.WantsToPickupItem](ctx.World)) {
		ecs.Remove[domain.WantsToPickupItem](ctx.Cmds, id)

		item, owner := want.Item, want.CollectedBy
		if owner.IsNil() {
			owner = id
		}
		if !ctx.World.Alive(item) || !ctx.World.Alive(owner) || !items.Has(item) || !positions.Has(item) || claimed.Has(item) {
			logger.Log.WithField("component", "inventory_system").WithFields(logrus.Fields{
				"collector": owner.String(),
				"item":      item.String(),
			}).Debug("Pickup ignored.")
			continue
		}
		claimed.Put(item)

		ecs.Remove[domain.Position](ctx.Cmds, item)
		ecs.Insert(ctx.Cmds, item, domain.InBackpack{Owner: owner})

		if players.Has(owner) {
			ctx.Log.Add("You pick up the %s.", nameOf(names, item))
		} else {
			ctx.Log.Add("%s picks up the %s.", nameOf(names, owner), nameOf(names, item))
		}
	}
}

// PotionUse лечит пьющего (не выше MaxHP) и удаляет зелье.
type PotionUse struct{}

func (PotionUse) Name() string { return "potion_use" }

func (PotionUse) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(
			ecs.KindOf[domain.WantsToDrinkPotion](),
			ecs.KindOf[domain.Potion](),
			ecs.KindOf[domain.InBackpack](),
			ecs.KindOf[domain.Name](),
			ecs.KindOf[domain.Player](),
		),
		Writes: kinds(ecs.KindOf[domain.CombatStats]()),
	}
}

func (PotionUse) Run(ctx *Context) {
	potions := ecs.Read[domain.Potion](ctx.World)
	packs := ecs.Read[domain.InBackpack](ctx.World)
	names := ecs.Read[domain.Name](ctx.World)
	players := ecs.Read[domain.Player](ctx.World)
	stats := ecs.Write[domain.CombatStats](ctx.World)
	consumed := mapset.New[types.EntityID]()

	for id, want := range ecs.Each(ecs.Read[domain.WantsToDrinkPotion](ctx.World)) {
		ecs.Remove[domain.WantsToDrinkPotion](ctx.Cmds, id)

		potion, ok := potions.Get(want.Potion)
		if !ok || !ctx.World.Alive(want.Potion) || consumed.Has(want.Potion) {
			continue
		}
		if pack, ok := packs.Get(want.Potion); !ok || pack.Owner != id {
			logger.Log.WithField("component", "inventory_system").WithFields(logrus.Fields{
				"drinker": id.String(),
				"potion":  want.Potion.String(),
			}).Debug("Potion is not in drinker's backpack.")
			continue
		}
		s, ok := stats.Get(id)
		if !ok {
			continue
		}
		consumed.Put(want.Potion)

		healed := s.Heal(potion.HealAmount)
		ctx.Cmds.Delete(want.Potion)

		if players.Has(id) {
			ctx.Log.Add("You drink the %s, healing %d hp.", nameOf(names, want.Potion), healed)
		} else {
			ctx.Log.Add("%s drinks the %s, healing %d hp.", nameOf(names, id), nameOf(names, want.Potion), healed)
		}
	}
}

// ItemDrop возвращает предмет на карту под ноги владельцу.
type ItemDrop struct{}

func (ItemDrop) Name() string { return "item_drop" }

func (ItemDrop) Access() ecs.Access {
	return ecs.Access{
		Reads: kinds(
			ecs.KindOf[domain.WantsToDropItem](),
			ecs.KindOf[domain.InBackpack](),
			ecs.KindOf[domain.Position](),
			ecs.KindOf[domain.Name](),
			ecs.KindOf[domain.Player](),
		),
	}
}

func (ItemDrop) Run(ctx *Context) {
	packs := ecs.Read[domain.InBackpack](ctx.World)
	positions := ecs.Read[domain.Position](ctx.World)
	names := ecs.Read[domain.Name](ctx.World)
	players := ecs.Read[domain.Player](ctx.World)

	for id, want := range ecs.Each(ecs.Read[domain.WantsToDropItem](ctx.World)) {
		ecs.Remove[domain.WantsToDropItem](ctx.Cmds, id)

		pack, ok := packs.Get(want.Item)
		if !ok || pack.Owner != id || !ctx.World.Alive(want.Item) {
			continue
		}
		pos, ok := positions.Get(id)
		if !ok {
			continue
		}

		ecs.Remove[domain.InBackpack](ctx.Cmds, want.Item)
		ecs.Insert(ctx.Cmds, want.Item, pos)

		if players.Has(id) {
			ctx.Log.Add("You drop the %s.", nameOf(names, want.Item))
		} else {
			ctx.Log.Add("%s drops the %s.", nameOf(names, id), nameOf(names, want.Item))
		}
	}
}
