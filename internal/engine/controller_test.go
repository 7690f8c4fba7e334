package engine

import (
	"testing"

	"dungeon-engine/internal/core/types/enums"
)

func TestController_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   enums.RunState
	}{
		{"warmup", []string{EventWarmup}, enums.RunStateAwaitingInput},
		{"full turn", []string{EventWarmup, EventAct, EventEndPlayerTurn, EventEndMonsterTurn}, enums.RunStateAwaitingInput},
		{"inventory cancel", []string{EventWarmup, EventOpenInventory, EventCancel}, enums.RunStateAwaitingInput},
		{"inventory select", []string{EventWarmup, EventOpenInventory, EventSelect}, enums.RunStatePlayerTurn},
		{"drop menu", []string{EventWarmup, EventOpenDrop}, enums.RunStateShowDropItem},
		{"monster turn", []string{EventWarmup, EventAct, EventEndPlayerTurn}, enums.RunStateMonsterTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for _, e := range tt.events {
				if err := c.Fire(e); err != nil {
					t.Fatalf("Fire(%s): %v", e, err)
				}
			}
			if c.State() != tt.want {
				t.Errorf("state = %s, want %s", c.State(), tt.want)
			}
		})
	}
}

func TestController_RejectsInvalidEvents(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		event  string
	}{
		{"act before warmup", nil, EventAct},
		{"cancel outside menu", []string{EventWarmup}, EventCancel},
		{"menu during player turn", []string{EventWarmup, EventAct}, EventOpenInventory},
		{"skip monster turn", []string{EventWarmup, EventAct}, EventEndMonsterTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for _, e := range tt.before {
				if err := c.Fire(e); err != nil {
					t.Fatal(err)
				}
			}
			before := c.State()
			if c.Can(tt.event) {
				t.Fatalf("Can(%s) = true in %s", tt.event, before)
			}
			if err := c.Fire(tt.event); err == nil {
				t.Fatal("expected error")
			}
			if c.State() != before {
				t.Errorf("state changed to %s", c.State())
			}
		})
	}
}
