package dungeon

import (
	"errors"
	"os"
	"regexp"
	"slices"
	"testing"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
	"dungeon-engine/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Silence()
	os.Exit(m.Run())
}

func TestGenerate_Connectivity(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m, err := Generate(utils.NewRNG(seed), DefaultGenOptions())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(m.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms", seed)
		}

		// Стартовая клетка должна быть полом
		sx, sy := m.Rooms[0].Center()
		if !m.IsFloor(sx, sy) {
			t.Fatalf("seed %d: spawn [%d,%d] is inside a wall", seed, sx, sy)
		}

		// Весь пол достижим из стартовой комнаты
		reached := m.FloodFill(sx, sy)
		for idx, tile := range m.Tiles {
			if tile == enums.TileFloor && !reached[idx] {
				x, y := m.IdxXY(idx)
				t.Fatalf("seed %d: floor [%d,%d] unreachable from spawn", seed, x, y)
			}
		}
	}
}

func TestGenerate_Invariants(t *testing.T) {
	opts := DefaultGenOptions()
	m, err := Generate(utils.NewRNG(99), opts)
	if err != nil {
		t.Fatal(err)
	}

	if m.Width != opts.Width || m.Height != opts.Height || len(m.Tiles) != opts.Width*opts.Height {
		t.Fatalf("map size %dx%d, tiles %d", m.Width, m.Height, len(m.Tiles))
	}

	for x := 0; x < m.Width; x++ {
		if m.IsFloor(x, 0) || m.IsFloor(x, m.Height-1) {
			t.Fatalf("border row carved at x=%d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.IsFloor(0, y) || m.IsFloor(m.Width-1, y) {
			t.Fatalf("border column carved at y=%d", y)
		}
	}

	for i, a := range m.Rooms {
		for j, b := range m.Rooms {
			if i != j && a.Intersects(b) {
				t.Fatalf("rooms %d and %d overlap: %+v %+v", i, j, a, b)
			}
		}
	}

	// Blocked после генерации - это ровно стены
	for idx, tile := range m.Tiles {
		if m.Blocked[idx] != (tile == enums.TileWall) {
			t.Fatalf("blocked[%d] = %v for %v", idx, m.Blocked[idx], tile)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(utils.NewRNG(5), DefaultGenOptions())
	b, _ := Generate(utils.NewRNG(5), DefaultGenOptions())
	if !slices.Equal(a.Tiles, b.Tiles) || !slices.Equal(a.Rooms, b.Rooms) {
		t.Error("same seed produced different maps")
	}
}

func TestGenerate_SkipsRoomsWhenCrowded(t *testing.T) {
	// На маленькой карте большинство попыток пересекаются - это не ошибка.
	opts := GenOptions{Width: 14, Height: 14, MaxRooms: 30, MinRoomSize: 5, MaxRoomSize: 6, PlacementAttempts: 2}
	m, err := Generate(utils.NewRNG(3), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(m.Rooms) == 0 || len(m.Rooms) >= opts.MaxRooms {
		t.Errorf("rooms = %d, want some but fewer than %d", len(m.Rooms), opts.MaxRooms)
	}
}

func TestGenOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *GenOptions)
	}{
		{"min above max", func(o *GenOptions) { o.MinRoomSize, o.MaxRoomSize = 9, 4 }},
		{"map too small", func(o *GenOptions) { o.Width = 8 }},
		{"no rooms", func(o *GenOptions) { o.MaxRooms = 0 }},
		{"no attempts", func(o *GenOptions) { o.PlacementAttempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultGenOptions()
			tt.mutate(&opts)
			if _, err := Generate(utils.NewRNG(1), opts); !errors.Is(err, ErrBadOptions) {
				t.Errorf("Generate error = %v, want ErrBadOptions", err)
			}
		})
	}
}

func TestLevelBuilder(t *testing.T) {
	w := ecs.NewWorld()
	domain.RegisterComponents(w)

	level, err := NewLevel(w, utils.NewRNG(11), nil).
		WithRooms(DefaultGenOptions()).
		SpawnPlayer(DefaultPlayerSpec()).
		SpawnMonsters().
		SpawnItems(2, 10).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pos, ok := ecs.Read[domain.Position](w).Get(level.Player)
	if !ok {
		t.Fatal("player has no position")
	}
	if cx, cy := level.Map.Rooms[0].Center(); pos.X != cx || pos.Y != cy {
		t.Errorf("player at %v, want centre of first room (%d,%d)", pos, cx, cy)
	}
	stats, _ := ecs.Read[domain.CombatStats](w).Get(level.Player)
	if stats != (domain.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5}) {
		t.Errorf("player stats = %+v", stats)
	}

	if level.Monsters != len(level.Map.Rooms)-1 {
		t.Errorf("monsters = %d, want one per extra room (%d)", level.Monsters, len(level.Map.Rooms)-1)
	}
	if got := ecs.Read[domain.Monster](w).Len(); got != level.Monsters {
		t.Errorf("Monster storage has %d, builder reported %d", got, level.Monsters)
	}
	if got := ecs.Read[domain.Potion](w).Len(); got != level.Items {
		t.Errorf("Potion storage has %d, builder reported %d", got, level.Items)
	}

	// Никто не стоит в стене и не делит клетку
	seen := map[domain.Position]bool{}
	for row := range ecs.Join2(ecs.Read[domain.Position](w), ecs.Read[domain.Renderable](w)) {
		if !level.Map.IsFloor(row.A.X, row.A.Y) {
			t.Errorf("entity %v spawned in a wall at %v", row.ID, *row.A)
		}
		if seen[*row.A] {
			t.Errorf("two entities share %v", *row.A)
		}
		seen[*row.A] = true
	}

	names := ecs.Read[domain.Name](w)
	pattern := regexp.MustCompile(`^(Goblin|Orc) #\d+$`)
	for _, id := range ecs.Read[domain.Monster](w).IDs() {
		n, _ := names.Get(id)
		if !pattern.MatchString(n.Name) {
			t.Errorf("unexpected monster name %q", n.Name)
		}
	}
}

func TestLevelBuilder_Errors(t *testing.T) {
	w := ecs.NewWorld()
	domain.RegisterComponents(w)

	bad := DefaultGenOptions()
	bad.MaxRooms = 0
	if _, err := NewLevel(w, utils.NewRNG(1), nil).WithRooms(bad).SpawnPlayer(DefaultPlayerSpec()).Build(); !errors.Is(err, ErrBadOptions) {
		t.Errorf("error = %v, want ErrBadOptions", err)
	}
	if _, err := NewLevel(w, utils.NewRNG(1), nil).WithRooms(DefaultGenOptions()).Build(); err == nil {
		t.Error("build without player must fail")
	}
	if _, err := NewLevel(w, utils.NewRNG(1), nil).WithMap(domain.NewMap(10, 10)).Build(); err == nil {
		t.Error("map without rooms must fail")
	}
}
