package engine

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/pkg/logger"
)

// События контроллера ходов.
const (
	EventWarmup         = "warmup"
	EventAct            = "act"
	EventOpenInventory  = "open_inventory"
	EventOpenDrop       = "open_drop"
	EventCancel         = "cancel"
	EventSelect         = "select"
	EventEndPlayerTurn  = "end_player_turn"
	EventEndMonsterTurn = "end_monster_turn"
)

// Controller - строгий конечный автомат состояний хода. Состояния в FSM
// хранятся строками RunState.String().
type Controller struct {
	fsm *fsm.FSM
}

func NewController() *Controller {
	var (
		preRun     = enums.RunStatePreRun.String()
		awaiting   = enums.RunStateAwaitingInput.String()
		playerTurn = enums.RunStatePlayerTurn.String()
		monstTurn  = enums.RunStateMonsterTurn.String()
		inventory  = enums.RunStateShowInventory.String()
		dropMenu   = enums.RunStateShowDropItem.String()
	)

	c := &Controller{}
	c.fsm = fsm.NewFSM(
		preRun,
		fsm.Events{
			{Name: EventWarmup, Src: []string{preRun}, Dst: awaiting},
			{Name: EventAct, Src: []string{awaiting}, Dst: playerTurn},
			{Name: EventOpenInventory, Src: []string{awaiting}, Dst: inventory},
			{Name: EventOpenDrop, Src: []string{awaiting}, Dst: dropMenu},
			{Name: EventCancel, Src: []string{inventory, dropMenu}, Dst: awaiting},
			{Name: EventSelect, Src: []string{inventory, dropMenu}, Dst: playerTurn},
			{Name: EventEndPlayerTurn, Src: []string{playerTurn}, Dst: monstTurn},
			{Name: EventEndMonsterTurn, Src: []string{monstTurn}, Dst: awaiting},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"component": "turn_controller",
					"event":     e.Event,
					"from":      e.Src,
					"to":        e.Dst,
				}).Debug("Run state changed.")
			},
		},
	)
	return c
}

// State - текущее состояние.
func (c *Controller) State() enums.RunState {
	rs, ok := enums.ParseRunState(c.fsm.Current())
	if !ok {
		panic("engine: controller in unknown state " + c.fsm.Current())
	}
	return rs
}

// Can сообщает, допустимо ли событие из текущего состояния.
func (c *Controller) Can(event string) bool {
	return c.fsm.Can(event)
}

// Fire выполняет переход. Недопустимое событие - ошибка fsm.
func (c *Controller) Fire(event string) error {
	return c.fsm.Event(context.Background(), event)
}
