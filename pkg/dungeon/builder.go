package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
	"dungeon-engine/pkg/utils"
)

// Level - результат сборки уровня.
type Level struct {
	Map      *domain.Map
	Player   types.EntityID
	Monsters int
	Items    int
}

// LevelBuilder предоставляет fluent API для заселения уровня. Первая ошибка
// запоминается, остальные шаги после неё ничего не делают.
type LevelBuilder struct {
	world     *ecs.World
	rng       *rand.Rand
	templates *Templates

	gameMap  *domain.Map
	player   types.EntityID
	occupied mapset.Set[int]
	monsters int
	items    int
	err      error
}

// NewLevel создает новый builder поверх мира. Компоненты уже должны быть
// зарегистрированы.
func NewLevel(world *ecs.World, rng *rand.Rand, templates *Templates) *LevelBuilder {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &LevelBuilder{
		world:     world,
		rng:       rng,
		templates: templates,
		occupied:  mapset.New[int](),
	}
}

// WithRooms генерирует карту.
func (b *LevelBuilder) WithRooms(opts GenOptions) *LevelBuilder {
	if b.err != nil {
		return b
	}
	m, err := Generate(b.rng, opts)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithMap(m)
}

// WithMap использует готовую карту (тесты, фиксированные уровни).
func (b *LevelBuilder) WithMap(m *domain.Map) *LevelBuilder {
	if len(m.Rooms) == 0 {
		b.err = fmt.Errorf("dungeon: map has no rooms")
		return b
	}
	b.gameMap = m
	return b
}

// SpawnPlayer ставит героя в центр первой комнаты.
func (b *LevelBuilder) SpawnPlayer(spec PlayerSpec) *LevelBuilder {
	if b.err != nil || b.gameMap == nil {
		return b
	}
	x, y := b.gameMap.Rooms[0].Center()
	b.player = CreatePlayer(b.world, domain.Position{X: x, Y: y}, spec)
	b.occupied.Put(b.gameMap.XYIdx(x, y))
	return b
}

// SpawnMonsters ставит по монстру в центр каждой комнаты, кроме первой.
func (b *LevelBuilder) SpawnMonsters() *LevelBuilder {
	if b.err != nil || b.gameMap == nil {
		return b
	}
	for i, room := range b.gameMap.Rooms[1:] {
		x, y := room.Center()
		idx := b.gameMap.XYIdx(x, y)
		if b.occupied.Has(idx) {
			continue
		}
		tpl := b.templates.PickMonster(b.rng)
		tpl.Spawn(b.world, domain.Position{X: x, Y: y}, i+1)
		b.occupied.Put(idx)
		b.monsters++
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "level_builder",
		"rooms":     len(b.gameMap.Rooms),
		"monsters":  b.monsters,
	}).Debug("Monsters spawned.")
	return b
}

// SpawnItems кладёт до maxPerRoom предметов в каждую комнату, кроме первой.
// Для каждого предмета делается до attempts попыток найти свободный пол.
func (b *LevelBuilder) SpawnItems(maxPerRoom, attempts int) *LevelBuilder {
	if b.err != nil || b.gameMap == nil || maxPerRoom <= 0 {
		return b
	}
	for _, room := range b.gameMap.Rooms[1:] {
		count := utils.RandRange(b.rng, 0, maxPerRoom)
		for i := 0; i < count; i++ {
			tpl, ok := b.templates.PickItem(b.rng)
			if !ok {
				return b
			}
			pos, found := b.freeTileIn(room, attempts)
			if !found {
				continue
			}
			tpl.Spawn(b.world, pos)
			b.items++
		}
	}
	return b
}

func (b *LevelBuilder) freeTileIn(room domain.Rect, attempts int) (domain.Position, bool) {
	for attempt := 0; attempt < attempts; attempt++ {
		x := utils.RandRange(b.rng, room.X1+1, room.X2)
		y := utils.RandRange(b.rng, room.Y1+1, room.Y2)
		idx := b.gameMap.XYIdx(x, y)
		if !b.gameMap.IsFloor(x, y) || b.occupied.Has(idx) {
			continue
		}
		b.occupied.Put(idx)
		return domain.Position{X: x, Y: y}, true
	}
	return domain.Position{}, false
}

// Build возвращает готовый уровень.
func (b *LevelBuilder) Build() (*Level, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.gameMap == nil {
		return nil, fmt.Errorf("dungeon: no map, call WithRooms or WithMap")
	}
	if b.player.IsNil() {
		return nil, fmt.Errorf("dungeon: no player, call SpawnPlayer")
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "level_builder",
		"size":      fmt.Sprintf("%dx%d", b.gameMap.Width, b.gameMap.Height),
		"rooms":     len(b.gameMap.Rooms),
		"monsters":  b.monsters,
		"items":     b.items,
	}).Info("Level built.")
	return &Level{Map: b.gameMap, Player: b.player, Monsters: b.monsters, Items: b.items}, nil
}
