package enums

import "strings"

// RunState — состояние контроллера ходов.
type RunState uint8

const (
	RunStatePreRun RunState = iota
	RunStateAwaitingInput
	RunStatePlayerTurn
	RunStateMonsterTurn
	RunStateShowInventory
	RunStateShowDropItem
)

var runStateToString = map[RunState]string{
	RunStatePreRun:        "PRE_RUN",
	RunStateAwaitingInput: "AWAITING_INPUT",
	RunStatePlayerTurn:    "PLAYER_TURN",
	RunStateMonsterTurn:   "MONSTER_TURN",
	RunStateShowInventory: "SHOW_INVENTORY",
	RunStateShowDropItem:  "SHOW_DROP_ITEM",
}

var runStateStringToType = map[string]RunState{
	"PRE_RUN":        RunStatePreRun,
	"AWAITING_INPUT": RunStateAwaitingInput,
	"PLAYER_TURN":    RunStatePlayerTurn,
	"MONSTER_TURN":   RunStateMonsterTurn,
	"SHOW_INVENTORY": RunStateShowInventory,
	"SHOW_DROP_ITEM": RunStateShowDropItem,
}

func (s RunState) String() string {
	if val, ok := runStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseRunState нужен FSM: состояния там хранятся строками.
func ParseRunState(s string) (RunState, bool) {
	val, ok := runStateStringToType[strings.ToUpper(s)]
	return val, ok
}

// IsModal — меню, в которых часы ходов стоят.
func (s RunState) IsModal() bool {
	return s == RunStateShowInventory || s == RunStateShowDropItem
}

// NeedsInput — состояние ждёт команду извне.
func (s RunState) NeedsInput() bool {
	return s == RunStateAwaitingInput || s.IsModal()
}
