package systems

import (
	"testing"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
)

func TestItemCollection(t *testing.T) {
	f := newFixture(8, 8)
	player := f.spawnPlayer(3, 3, stats(30, 2, 5))
	goblin := f.spawnMonster("Goblin", 4, 3, stats(16, 1, 4))
	potion := f.spawnPotion(3, 3, 8)

	// Оба хотят один предмет: достаётся первому
	ecs.Attach(f.w, player, domain.WantsToPickupItem{Item: potion, CollectedBy: player})
	ecs.Attach(f.w, goblin, domain.WantsToPickupItem{Item: potion, CollectedBy: goblin})

	f.run(NewPipeline(ItemCollection{}), enums.RunStatePlayerTurn)

	if has[domain.Position](f.w, potion) {
		t.Error("picked item must lose its Position")
	}
	if pack := get[domain.InBackpack](t, f.w, potion); pack.Owner != player {
		t.Errorf("owner = %s, want player", pack.Owner)
	}
	if has[domain.WantsToPickupItem](f.w, player) || has[domain.WantsToPickupItem](f.w, goblin) {
		t.Error("pickup intents must be removed")
	}
	if line := f.log.Recent(1)[0]; line != "You pick up the Health Potion." {
		t.Errorf("log = %q", line)
	}
}

func TestPotionUse(t *testing.T) {
	tests := []struct {
		name     string
		hp, heal int
		wantHP   int
	}{
		{"partial heal", 10, 8, 18},
		{"capped at max", 25, 8, 30},
		{"already full", 30, 8, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(8, 8)
			s := stats(30, 2, 5)
			s.HP = tt.hp
			player := f.spawnPlayer(3, 3, s)
			potion := f.spawnPotion(0, 0, tt.heal)
			ecs.Detach[domain.Position](f.w, potion)
			ecs.Attach(f.w, potion, domain.InBackpack{Owner: player})
			ecs.Attach(f.w, player, domain.WantsToDrinkPotion{Potion: potion})

			f.run(NewPipeline(PotionUse{}), enums.RunStatePlayerTurn)

			if hp := get[domain.CombatStats](t, f.w, player).HP; hp != tt.wantHP {
				t.Errorf("HP = %d, want %d", hp, tt.wantHP)
			}
			if f.w.Alive(potion) {
				t.Error("potion must be consumed")
			}
			if has[domain.WantsToDrinkPotion](f.w, player) {
				t.Error("drink intent must be removed")
			}
		})
	}
}

func TestPotionUse_NotOwned(t *testing.T) {
	f := newFixture(8, 8)
	s := stats(30, 2, 5)
	s.HP = 10
	player := f.spawnPlayer(3, 3, s)
	potion := f.spawnPotion(5, 5, 8)
	ecs.Attach(f.w, player, domain.WantsToDrinkPotion{Potion: potion})

	f.run(NewPipeline(PotionUse{}), enums.RunStatePlayerTurn)

	if !f.w.Alive(potion) {
		t.Error("potion on the floor must not be consumed")
	}
	if hp := get[domain.CombatStats](t, f.w, player).HP; hp != 10 {
		t.Errorf("HP = %d, want 10", hp)
	}
	if has[domain.WantsToDrinkPotion](f.w, player) {
		t.Error("intent must be removed on a no-op")
	}
}

func TestItemDrop(t *testing.T) {
	f := newFixture(8, 8)
	player := f.spawnPlayer(5, 5, stats(30, 2, 5))
	potion := f.spawnPotion(1, 1, 8)
	ecs.Detach[domain.Position](f.w, potion)
	ecs.Attach(f.w, potion, domain.InBackpack{Owner: player})
	ecs.Attach(f.w, player, domain.WantsToDropItem{Item: potion})

	f.run(NewPipeline(ItemDrop{}), enums.RunStatePlayerTurn)

	if pos := get[domain.Position](t, f.w, potion); pos != (domain.Position{X: 5, Y: 5}) {
		t.Errorf("dropped at %+v, want dropper's position [5,5]", pos)
	}
	if has[domain.InBackpack](f.w, potion) {
		t.Error("dropped item must leave the backpack")
	}
	if has[domain.WantsToDropItem](f.w, player) {
		t.Error("drop intent must be removed")
	}
}
