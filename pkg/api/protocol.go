package api

import "dungeon-engine/internal/core/types"

// --- СИМУЛЯЦИЯ -> РЕНДЕРЕР ---

// Snapshot - полный read-only снимок того, что видит игрок после прохода.
// Собирается между проходами, когда мир стабилен.
type Snapshot struct {
	// RunState текущее состояние контроллера ("AWAITING_INPUT", "SHOW_INVENTORY", ...).
	RunState string `json:"runState"`

	// Turn число завершённых ходов игрока.
	Turn int `json:"turn"`

	// Seed зерно, из которого построен уровень.
	Seed int64 `json:"seed"`

	Grid GridMeta `json:"grid"`

	// Map только разведанные тайлы.
	Map []TileView `json:"map"`

	// Entities видимые сущности, упорядоченные по Order по убыванию:
	// предметы под монстрами, монстры под игроком.
	Entities []EntityView `json:"entities"`

	// Player статус для панели. nil, если игрока нет в мире.
	Player *StatusView `json:"player,omitempty"`

	// Backpack содержимое рюкзака игрока, для меню.
	Backpack []ItemView `json:"backpack"`

	// Logs последние строки журнала, от новой к старой.
	Logs []string `json:"logs"`

	// Dead игрок погиб, дальнейший ввод не принимается.
	Dead bool `json:"dead,omitempty"`
}

// GridMeta размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView один разведанный тайл.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall bool `json:"isWall"`

	// IsVisible тайл в текущем поле зрения. Иначе рендерится тускло.
	IsVisible bool `json:"isVisible"`
}

// EntityView сущность с Position и Renderable на видимом тайле.
type EntityView struct {
	ID   types.EntityID `json:"id"`
	Type string         `json:"type"` // PLAYER, MONSTER, ITEM
	Name string         `json:"name"`

	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Bg     string `json:"bg"`
	Order  int    `json:"order"`

	// Stats только для живых участников боя.
	Stats *StatusView `json:"stats,omitempty"`
}

// StatusView HP и боевые характеристики.
type StatusView struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// ItemView предмет в рюкзаке.
type ItemView struct {
	ID         types.EntityID `json:"id"`
	Name       string         `json:"name"`
	Symbol     string         `json:"symbol"`
	Color      string         `json:"color"`
	Bg         string         `json:"bg"`
	HealAmount int            `json:"healAmount,omitempty"`
}

// Entity types
const (
	EntityTypePlayer  = "PLAYER"
	EntityTypeMonster = "MONSTER"
	EntityTypeItem    = "ITEM"
)
