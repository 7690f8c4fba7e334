package domain

import "dungeon-engine/internal/core/types"

// Намерения живут ровно до обработки своей системой и удаляются ею же,
// даже если обработка ничего не изменила.

type WantsToMelee struct {
	Target types.EntityID
}

// SufferDamage копит урон за проход: по цели могут попасть несколько раз.
type SufferDamage struct {
	Amounts []int
}

func NewSufferDamage(amount int) SufferDamage {
	return SufferDamage{Amounts: []int{amount}}
}

// MergeDamage используется как merge для ecs.Upsert.
func MergeDamage(existing *SufferDamage, incoming SufferDamage) {
	existing.Amounts = append(existing.Amounts, incoming.Amounts...)
}

func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}

type WantsToPickupItem struct {
	Item        types.EntityID
	CollectedBy types.EntityID
}

type WantsToDrinkPotion struct {
	Potion types.EntityID
}

type WantsToDropItem struct {
	Item types.EntityID
}

// WantsToMove - шаг на соседнюю клетку, выдаётся ИИ.
type WantsToMove struct {
	Dx int
	Dy int
}
