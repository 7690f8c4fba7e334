package domain

import (
	"errors"
	"slices"
	"testing"

	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{" Drink ", ActionDrink},
		{"drop_menu", ActionOpenDropMenu},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.input); got != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseCommand(t *testing.T) {
	item := types.PackEntityID(1, 4)

	tests := []struct {
		name    string
		input   string
		want    *Command
		wantErr bool
	}{
		{name: "move", input: "move 1 -1", want: Move(1, -1)},
		{name: "wait", input: "WAIT", want: Wait()},
		{name: "drink", input: "drink 4294967300", want: Drink(item)},
		{name: "move too far", input: "move 2 0", wantErr: true},
		{name: "move nowhere", input: "move 0 0", wantErr: true},
		{name: "move missing arg", input: "move 1", wantErr: true},
		{name: "drop without item", input: "drop", wantErr: true},
		{name: "garbage", input: "dance", wantErr: true},
		{name: "empty", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCommand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCommand) {
					t.Errorf("error %v does not wrap ErrInvalidCommand", err)
				}
				return
			}
			if *got != *tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeleeDamage(t *testing.T) {
	tests := []struct {
		power, defense, want int
	}{
		{5, 1, 4},
		{4, 2, 2},
		{2, 2, 1},
		{1, 10, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := MeleeDamage(tt.power, tt.defense); got != tt.want {
			t.Errorf("MeleeDamage(%d, %d) = %d, want %d", tt.power, tt.defense, got, tt.want)
		}
	}
}

func TestCombatStats_Heal(t *testing.T) {
	tests := []struct {
		name       string
		hp, amount int
		wantHP     int
		wantHealed int
	}{
		{"partial", 20, 5, 25, 5},
		{"capped", 28, 8, 30, 2},
		{"already full", 30, 8, 30, 0},
		{"from negative", -3, 8, 5, 8},
		{"non-positive amount", 10, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CombatStats{MaxHP: 30, HP: tt.hp}
			healed := s.Heal(tt.amount)
			if s.HP != tt.wantHP || healed != tt.wantHealed {
				t.Errorf("Heal(%d) from %d: hp=%d healed=%d, want %d/%d", tt.amount, tt.hp, s.HP, healed, tt.wantHP, tt.wantHealed)
			}
			if s.HP > s.MaxHP {
				t.Error("HP above MaxHP")
			}
		})
	}
}

func TestPosition_Distance(t *testing.T) {
	p := Position{X: 5, Y: 5}
	tests := []struct {
		other    Position
		dist     int
		adjacent bool
	}{
		{Position{5, 5}, 0, false},
		{Position{6, 6}, 1, true},
		{Position{4, 5}, 1, true},
		{Position{7, 6}, 2, false},
		{Position{5, 0}, 5, false},
	}
	for _, tt := range tests {
		if got := p.ChebyshevTo(tt.other); got != tt.dist {
			t.Errorf("ChebyshevTo(%v) = %d, want %d", tt.other, got, tt.dist)
		}
		if got := p.IsAdjacent(tt.other); got != tt.adjacent {
			t.Errorf("IsAdjacent(%v) = %v, want %v", tt.other, got, tt.adjacent)
		}
	}
	if got := p.Shift(-1, 2); got != (Position{4, 7}) {
		t.Errorf("Shift = %v", got)
	}
}

func TestSufferDamage(t *testing.T) {
	s := NewSufferDamage(3)
	MergeDamage(&s, NewSufferDamage(4))
	MergeDamage(&s, SufferDamage{Amounts: []int{1, 2}})
	if !slices.Equal(s.Amounts, []int{3, 4, 1, 2}) || s.Total() != 10 {
		t.Errorf("merged = %v total %d", s.Amounts, s.Total())
	}
}

func TestViewshed(t *testing.T) {
	v := NewViewshed(8)
	if !v.Dirty || v.Range != 8 {
		t.Fatalf("NewViewshed = %+v", v)
	}
	if v.CanSee(3) {
		t.Error("empty viewshed sees something")
	}

	at := Position{X: 2, Y: 2}
	if !v.NeedsRecompute(at) {
		t.Error("fresh viewshed must need a recompute")
	}
	v.SetVisible(at, []int{1, 3, 7})
	if !v.CanSee(3) || v.CanSee(4) {
		t.Error("CanSee disagrees with Visible")
	}
	if v.Dirty || v.NeedsRecompute(at) {
		t.Error("SetVisible must clear Dirty")
	}
	if !v.NeedsRecompute(at.Shift(1, 0)) {
		t.Error("moved origin must need a recompute")
	}
	v.Dirty = true
	if !v.NeedsRecompute(at) {
		t.Error("Dirty must force a recompute")
	}

	var zero Viewshed
	if zero.CanSee(0) {
		t.Error("zero viewshed sees something")
	}
}

func TestGameLog(t *testing.T) {
	var mirrored []string
	l := NewGameLog(3)
	l.OnAdd = func(line string) { mirrored = append(mirrored, line) }

	l.Add("Welcome")
	l.Add("%s hits %s for %d hp.", "Orc #1", "Player", 2)
	l.Add("three")
	l.Add("four")

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	want := []string{"four", "three", "Orc #1 hits Player for 2 hp."}
	if got := l.Recent(10); !slices.Equal(got, want) {
		t.Errorf("Recent(10) = %q, want %q", got, want)
	}
	if got := l.Recent(1); !slices.Equal(got, want[:1]) {
		t.Errorf("Recent(1) = %q", got)
	}
	if len(mirrored) != 4 {
		t.Errorf("OnAdd called %d times, want 4", len(mirrored))
	}
	if NewGameLog(0).capacity != DefaultLogCapacity {
		t.Error("zero capacity must fall back to default")
	}
}

func TestMap_Basics(t *testing.T) {
	m := NewMap(6, 4)
	for x := 1; x <= 3; x++ {
		m.Tiles[m.XYIdx(x, 1)] = enums.TileFloor
	}
	m.Tiles[m.XYIdx(3, 2)] = enums.TileFloor

	if x, y := m.IdxXY(m.XYIdx(5, 3)); x != 5 || y != 3 {
		t.Errorf("IdxXY round trip = %d,%d", x, y)
	}
	if !m.IsOpaque(-1, 0) || !m.IsOpaque(0, 0) || m.IsOpaque(1, 1) {
		t.Error("IsOpaque wrong")
	}

	m.PopulateBlocked()
	if m.IsBlocked(2, 1) || !m.IsBlocked(0, 0) || !m.IsBlocked(99, 99) {
		t.Error("PopulateBlocked wrong")
	}

	m.MoveBlocker(Position{1, 1}, Position{2, 1})
	if m.IsBlocked(1, 1) || !m.IsBlocked(2, 1) {
		t.Error("MoveBlocker wrong")
	}

	id := types.PackEntityID(1, 0)
	m.AddContent(3, 2, id)
	m.AddContent(-1, 0, id)
	if got := m.EntitiesAt(3, 2); len(got) != 1 || got[0] != id {
		t.Errorf("EntitiesAt = %v", got)
	}
	m.ClearContent()
	if len(m.EntitiesAt(3, 2)) != 0 {
		t.Error("ClearContent left entries")
	}

	reached := m.FloodFill(1, 1)
	count := 0
	for _, r := range reached {
		if r {
			count++
		}
	}
	if count != 4 {
		t.Errorf("FloodFill reached %d tiles, want 4", count)
	}
	if m.FloodFill(0, 0)[0] {
		t.Error("FloodFill from a wall must reach nothing")
	}

	m.SetVisibleTiles([]int{m.XYIdx(1, 1)})
	m.SetVisibleTiles([]int{m.XYIdx(2, 1)})
	if m.Visible[m.XYIdx(1, 1)] || !m.Visible[m.XYIdx(2, 1)] {
		t.Error("Visible must be overwritten")
	}
	if !m.Revealed[m.XYIdx(1, 1)] || !m.Revealed[m.XYIdx(2, 1)] {
		t.Error("Revealed must accumulate")
	}
}

func TestRect(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(2, 2, 4, 4), true},
		{"touching edge", NewRect(4, 0, 3, 3), true},
		{"apart", NewRect(6, 6, 2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
	if x, y := a.Center(); x != 2 || y != 2 {
		t.Errorf("Center = %d,%d", x, y)
	}
	if a.Contains(0, 0) || !a.Contains(1, 1) || !a.Contains(4, 4) {
		t.Error("Contains wrong")
	}
}
