package systems

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
)

func TestDecide(t *testing.T) {
	f := newFixture(12, 12)
	target := domain.Position{X: 5, Y: 5}

	tests := []struct {
		name    string
		self    domain.Position
		blocked *domain.Position
		blind   bool
		want    enums.AIState
		dx, dy  int
	}{
		{name: "adjacent attacks", self: domain.Position{X: 6, Y: 6}, want: enums.AIStateAttack},
		{name: "orthogonal neighbour attacks", self: domain.Position{X: 5, Y: 4}, want: enums.AIStateAttack},
		{name: "approach diagonally", self: domain.Position{X: 8, Y: 2}, want: enums.AIStateApproach, dx: -1, dy: 1},
		{name: "approach straight", self: domain.Position{X: 1, Y: 5}, want: enums.AIStateApproach, dx: 1, dy: 0},
		{name: "blocked step waits", self: domain.Position{X: 8, Y: 5}, blocked: &domain.Position{X: 7, Y: 5}, want: enums.AIStateBlocked},
		{name: "unseen player idles", self: domain.Position{X: 8, Y: 8}, blind: true, want: enums.AIStateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.m.PopulateBlocked()
			if tt.blocked != nil {
				f.m.Blocked[f.m.XYIdx(tt.blocked.X, tt.blocked.Y)] = true
			}

			vs := domain.NewViewshed(8)
			if !tt.blind {
				vs.SetVisible(tt.self, ComputeVisibleTiles(f.m, tt.self, vs.Range))
			}

			state, dx, dy := Decide(f.m, tt.self, &vs, target)
			if state != tt.want || dx != tt.dx || dy != tt.dy {
				t.Errorf("Decide = %s (%d,%d), want %s (%d,%d)", state, dx, dy, tt.want, tt.dx, tt.dy)
			}
		})
	}
}

func TestMonsterAI_OnlyOnMonsterTurn(t *testing.T) {
	f := newFixture(12, 12)
	f.spawnPlayer(2, 2, stats(30, 2, 5))
	orc := f.spawnMonster("Orc", 6, 2, stats(16, 1, 4))
	p := NewPipeline(Visibility{}, MonsterAI{})

	f.run(p, enums.RunStatePlayerTurn)
	if has[domain.WantsToMove](f.w, orc) {
		t.Fatal("monster acted during the player's turn")
	}

	f.run(p, enums.RunStateMonsterTurn)
	move := get[domain.WantsToMove](t, f.w, orc)
	if move.Dx != -1 || move.Dy != 0 {
		t.Errorf("move = %+v, want (-1,0)", move)
	}
}

func TestMonsterAI_AdjacentMeleeDoesNotMove(t *testing.T) {
	f := newFixture(12, 12)
	player := f.spawnPlayer(4, 4, stats(30, 2, 5))
	goblin := f.spawnMonster("Goblin", 5, 5, stats(16, 1, 4))

	f.run(NewPipeline(Visibility{}, MonsterAI{}), enums.RunStateMonsterTurn)

	melee := get[domain.WantsToMelee](t, f.w, goblin)
	if melee.Target != player {
		t.Errorf("melee target = %s, want player %s", melee.Target, player)
	}
	if has[domain.WantsToMove](f.w, goblin) {
		t.Error("adjacent monster must not move")
	}
}

func TestMonsterAI_DecisionsIgnoreSpawnOrder(t *testing.T) {
	type spawn struct {
		name string
		pos  domain.Position
	}
	// A и B метят в одну клетку [4,4], C стоит вплотную
	monsters := []spawn{
		{"A", domain.Position{X: 3, Y: 3}},
		{"B", domain.Position{X: 3, Y: 5}},
		{"C", domain.Position{X: 6, Y: 5}},
	}

	decide := func(order []spawn) map[string]string {
		f := newFixture(10, 10)
		f.spawnPlayer(5, 4, stats(30, 2, 5))
		ids := make(map[string]types.EntityID)
		for _, s := range order {
			ids[s.name] = f.spawnMonster(s.name, s.pos.X, s.pos.Y, stats(16, 1, 4))
		}
		IndexMap(f.m, ecs.Read[domain.Position](f.w), ecs.Read[domain.BlocksTile](f.w))

		f.run(NewPipeline(Visibility{}, MonsterAI{}), enums.RunStateMonsterTurn)

		out := make(map[string]string)
		for name, id := range ids {
			switch {
			case has[domain.WantsToMelee](f.w, id):
				out[name] = "melee"
			case has[domain.WantsToMove](f.w, id):
				m := get[domain.WantsToMove](t, f.w, id)
				out[name] = fmt.Sprintf("move %d %d", m.Dx, m.Dy)
			default:
				out[name] = "idle"
			}
		}
		return out
	}

	forward := decide(monsters)
	reversed := slices.Clone(monsters)
	slices.Reverse(reversed)
	backward := decide(reversed)

	want := map[string]string{"A": "move 1 1", "B": "move 1 -1", "C": "melee"}
	if !maps.Equal(forward, want) {
		t.Errorf("forward order = %v, want %v", forward, want)
	}
	if !maps.Equal(backward, forward) {
		t.Errorf("reversed order = %v, forward = %v", backward, forward)
	}
}
