package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dungeon-engine/internal/core/types"
)

var ErrInvalidCommand = errors.New("invalid command")

// Command - разрешённая команда ввода. Поля используются в зависимости от Action:
// Dx/Dy для MOVE, Item для DRINK, DROP и SELECT.
type Command struct {
	Action ActionType
	Dx     int
	Dy     int
	Item   types.EntityID
}

func Move(dx, dy int) *Command { return &Command{Action: ActionMove, Dx: dx, Dy: dy} }
func Wait() *Command { return &Command{Action: ActionWait} }
func Pickup() *Command { return &Command{Action: ActionPickup} }
func Drink(item types.EntityID) *Command { return &Command{Action: ActionDrink, Item: item} }
func Drop(item types.EntityID) *Command { return &Command{Action: ActionDrop, Item: item} }
func OpenInventory() *Command { return &Command{Action: ActionOpenInventory} }
func OpenDropMenu() *Command { return &Command{Action: ActionOpenDropMenu} }
func Select(item types.EntityID) *Command { return &Command{Action: ActionSelect, Item: item} }
func Cancel() *Command { return &Command{Action: ActionCancel} }

// Validate проверяет форму команды, не состояние мира.
func (c *Command) Validate() error {
	switch c.Action {
	case ActionUnknown:
		return fmt.Errorf("%w: unknown action", ErrInvalidCommand)
	case ActionMove:
		if c.Dx < -1 || c.Dx > 1 || c.Dy < -1 || c.Dy > 1 || (c.Dx == 0 && c.Dy == 0) {
			return fmt.Errorf("%w: move (%d,%d) is not a single step", ErrInvalidCommand, c.Dx, c.Dy)
		}
	case ActionDrink, ActionDrop, ActionSelect:
		if c.Item.IsNil() {
			return fmt.Errorf("%w: %s needs an item", ErrInvalidCommand, c.Action)
		}
	}
	return nil
}

func (c *Command) String() string {
	switch c.Action {
	case ActionMove:
		return fmt.Sprintf("MOVE %d %d", c.Dx, c.Dy)
	case ActionDrink, ActionDrop, ActionSelect:
		return fmt.Sprintf("%s %d", c.Action, uint64(c.Item))
	default:
		return c.Action.String()
	}
}

// ParseCommand разбирает текстовую форму ("move 1 0", "drink 4294967297"),
// используется скриптовым режимом CLI.
func ParseCommand(s string) (*Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCommand)
	}

	cmd := &Command{Action: ParseAction(fields[0])}
	args := fields[1:]

	switch cmd.Action {
	case ActionMove:
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: MOVE wants dx dy", ErrInvalidCommand)
		}
		dx, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: dx: %v", ErrInvalidCommand, err)
		}
		dy, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: dy: %v", ErrInvalidCommand, err)
		}
		cmd.Dx, cmd.Dy = dx, dy
	case ActionDrink, ActionDrop, ActionSelect:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s wants an item id", ErrInvalidCommand, cmd.Action)
		}
		var id types.EntityID
		if err := id.UnmarshalJSON([]byte(args[0])); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
		}
		cmd.Item = id
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}
