package domain

import (
	"github.com/zyedidia/generic/mapset"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
)

// --- КОМПОНЕНТЫ ---

// Position - авторитетная координата сущности на карте.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Renderable - только для рендерера, симуляция его не читает.
type Renderable struct {
	Glyph types.Glyph `json:"glyph"`
	Bg    types.RGB   `json:"bg"`
	// Order - порядок отрисовки: больше рисуется раньше (ниже).
	Order int `json:"order"`
}

// Viewshed - поле зрения.
//
// Visible хранится отсортированным по индексу клетки, чтобы результат был
// детерминированным; seen дублирует его для быстрых проверок CanSee.
type Viewshed struct {
	Visible []int
	Range   int
	Dirty   bool

	seen     mapset.Set[int]
	origin   Position
	computed bool
}

func NewViewshed(rangeTiles int) Viewshed {
	return Viewshed{Range: rangeTiles, Dirty: true, seen: mapset.New[int]()}
}

// NeedsRecompute: флаг Dirty или смена позиции с последнего расчёта.
func (v *Viewshed) NeedsRecompute(pos Position) bool {
	return v.Dirty || !v.computed || v.origin != pos
}

// SetVisible заменяет видимый набор, вычисленный из origin, и снимает Dirty.
func (v *Viewshed) SetVisible(origin Position, tiles []int) {
	v.Visible = tiles
	v.seen = mapset.New[int]()
	for _, idx := range tiles {
		v.seen.Put(idx)
	}
	v.origin = origin
	v.computed = true
	v.Dirty = false
}

// CanSee проверяет, входит ли клетка в текущий видимый набор.
func (v *Viewshed) CanSee(idx int) bool {
	return v.seen.Has(idx)
}

// CombatStats - боевые характеристики.
type CombatStats struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// Name - отображаемое имя.
type Name struct {
	Name string `json:"name"`
}

// --- ТЕГИ ---

// BlocksTile - сущность занимает клетку для поиска пути.
type BlocksTile struct{}

// Player и Monster взаимоисключающие.
type Player struct{}
type Monster struct{}

// Item - подбираемый предмет.
type Item struct{}

// Potion - расходник с лечением.
type Potion struct {
	HealAmount int `json:"healAmount"`
}

// InBackpack - предмет лежит в рюкзаке Owner. Это слабая ссылка: владелец
// может быть удалён, проверять через World.Alive.
type InBackpack struct {
	Owner types.EntityID `json:"owner"`
}

// RegisterComponents регистрирует все хранилища, включая намерения.
func RegisterComponents(w *ecs.World) {
	ecs.Register[Position](w)
	ecs.Register[Renderable](w)
	ecs.Register[Viewshed](w)
	ecs.Register[CombatStats](w)
	ecs.Register[Name](w)
	ecs.Register[BlocksTile](w)
	ecs.Register[Player](w)
	ecs.Register[Monster](w)
	ecs.Register[Item](w)
	ecs.Register[Potion](w)
	ecs.Register[InBackpack](w)

	ecs.Register[WantsToMelee](w)
	ecs.Register[SufferDamage](w)
	ecs.Register[WantsToPickupItem](w)
	ecs.Register[WantsToDrinkPotion](w)
	ecs.Register[WantsToDropItem](w)
	ecs.Register[WantsToMove](w)
}
