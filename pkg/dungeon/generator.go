package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/utils"
)

// Параметры генерации по умолчанию.
const (
	MapWidth          = 80
	MapHeight         = 43
	MaxRooms          = 30
	MinSize           = 6
	MaxSize           = 10
	PlacementAttempts = 5
)

var ErrBadOptions = errors.New("dungeon: bad generator options")

// GenOptions - размеры карты и комнат.
type GenOptions struct {
	Width             int `toml:"width"`
	Height            int `toml:"height"`
	MaxRooms          int `toml:"max_rooms"`
	MinRoomSize       int `toml:"min_room_size"`
	MaxRoomSize       int `toml:"max_room_size"`
	PlacementAttempts int `toml:"placement_attempts"`
}

func DefaultGenOptions() GenOptions {
	return GenOptions{
		Width:             MapWidth,
		Height:            MapHeight,
		MaxRooms:          MaxRooms,
		MinRoomSize:       MinSize,
		MaxRoomSize:       MaxSize,
		PlacementAttempts: PlacementAttempts,
	}
}

// Validate проверяет, что хотя бы самая большая комната помещается в карту.
func (o GenOptions) Validate() error {
	switch {
	case o.MinRoomSize < 2 || o.MaxRoomSize < o.MinRoomSize:
		return fmt.Errorf("%w: room size %d..%d", ErrBadOptions, o.MinRoomSize, o.MaxRoomSize)
	case o.Width < o.MaxRoomSize+2 || o.Height < o.MaxRoomSize+2:
		return fmt.Errorf("%w: %dx%d map cannot fit a %d room", ErrBadOptions, o.Width, o.Height, o.MaxRoomSize)
	case o.MaxRooms < 1 || o.PlacementAttempts < 1:
		return fmt.Errorf("%w: max_rooms and placement_attempts must be positive", ErrBadOptions)
	}
	return nil
}

// Generate строит карту из комнат и коридоров.
//
// Каждая комната получает до PlacementAttempts попыток найти место без
// пересечений; если все неудачны, комната пропускается. Новая комната
// соединяется с предыдущей принятой L-образным коридором: сначала по
// горизонтали вдоль строки центра предыдущей, затем по вертикали вдоль
// столбца центра новой. Граница карты всегда остаётся стеной.
func Generate(rng *rand.Rand, opts GenOptions) (*domain.Map, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := domain.NewMap(opts.Width, opts.Height)
	m.Rooms = make([]domain.Rect, 0, opts.MaxRooms)

	for i := 0; i < opts.MaxRooms; i++ {
		room, ok := placeRoom(rng, m, opts)
		if !ok {
			continue
		}

		createRoom(m, room)
		if len(m.Rooms) > 0 {
			prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
			newX, newY := room.Center()
			createHCorridor(m, prevX, newX, prevY)
			createVCorridor(m, prevY, newY, newX)
		}
		m.Rooms = append(m.Rooms, room)
	}

	// Ни одна комната не встала: одна комната по центру, чтобы было где появиться.
	if len(m.Rooms) == 0 {
		size := opts.MinRoomSize
		room := domain.NewRect((opts.Width-size)/2, (opts.Height-size)/2, size, size)
		createRoom(m, room)
		m.Rooms = append(m.Rooms, room)
	}

	m.PopulateBlocked()
	return m, nil
}

func placeRoom(rng *rand.Rand, m *domain.Map, opts GenOptions) (domain.Rect, bool) {
	for attempt := 0; attempt < opts.PlacementAttempts; attempt++ {
		w := utils.RandRange(rng, opts.MinRoomSize, opts.MaxRoomSize)
		h := utils.RandRange(rng, opts.MinRoomSize, opts.MaxRoomSize)
		x := utils.RandRange(rng, 0, opts.Width-w-2)
		y := utils.RandRange(rng, 0, opts.Height-h-2)

		candidate := domain.NewRect(x, y, w, h)
		failed := false
		for _, other := range m.Rooms {
			if candidate.Intersects(other) {
				failed = true
				break
			}
		}
		if !failed {
			return candidate, true
		}
	}
	return domain.Rect{}, false
}

// --- Вспомогательные функции ---

func createRoom(m *domain.Map, room domain.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			carve(m, x, y)
		}
	}
}

func createHCorridor(m *domain.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carve(m, x, y)
	}
}

func createVCorridor(m *domain.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carve(m, x, y)
	}
}

// carve не трогает границу карты.
func carve(m *domain.Map, x, y int) {
	if x < 1 || y < 1 || x > m.Width-2 || y > m.Height-2 {
		return
	}
	m.Tiles[m.XYIdx(x, y)] = enums.TileFloor
}
