package domain

import "strings"

// ActionType - абстрактная команда от слоя ввода.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionPickup
	ActionDrink
	ActionDrop
	ActionOpenInventory
	ActionOpenDropMenu
	ActionSelect
	ActionCancel
)

var actionStringToCmd = map[string]ActionType{
	"MOVE":      ActionMove,
	"WAIT":      ActionWait,
	"PICKUP":    ActionPickup,
	"DRINK":     ActionDrink,
	"DROP":      ActionDrop,
	"INVENTORY": ActionOpenInventory,
	"DROP_MENU": ActionOpenDropMenu,
	"SELECT":    ActionSelect,
	"CANCEL":    ActionCancel,
}

var actionCmdToString = map[ActionType]string{
	ActionMove:          "MOVE",
	ActionWait:          "WAIT",
	ActionPickup:        "PICKUP",
	ActionDrink:         "DRINK",
	ActionDrop:          "DROP",
	ActionOpenInventory: "INVENTORY",
	ActionOpenDropMenu:  "DROP_MENU",
	ActionSelect:        "SELECT",
	ActionCancel:        "CANCEL",
}

// ParseAction нечувствителен к регистру.
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
