package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/config"
	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine/handlers"
	"dungeon-engine/internal/engine/handlers/actions"
	"dungeon-engine/internal/systems"
	"dungeon-engine/pkg/dungeon"
	"dungeon-engine/pkg/logger"
	"dungeon-engine/pkg/utils"
)

var (
	// ErrPlayerDead - терминальное состояние: внешний цикл должен остановиться.
	ErrPlayerDead = errors.New("player is dead")
	// ErrUnknownCommand - команда, которую не понимает ни одно состояние.
	ErrUnknownCommand = errors.New("unknown command")
)

// Game владеет миром, картой, журналом и конвейером. Внешний цикл
// вызывает Advance ("один кадр") и читает Snapshot между вызовами.
type Game struct {
	World  *ecs.World
	Map    *domain.Map
	Log    *domain.GameLog
	Player types.EntityID
	Seed   int64

	cmds     *ecs.Commands
	pipeline *systems.Pipeline
	ctrl     *Controller

	handlers map[domain.ActionType]handlers.HandlerFunc
	modal    map[enums.RunState]map[domain.ActionType]handlers.HandlerFunc

	// journal - принятые на вводе команды, для реплея
	journal []domain.Command

	turn int
	dead bool
}

// NewGame строит уровень по конфигурации. Seed 0 берётся от часов.
func NewGame(cfg *config.Config, templates *dungeon.Templates) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := utils.NewRNG(seed)

	w := ecs.NewWorld()
	domain.RegisterComponents(w)

	level, err := dungeon.NewLevel(w, rng, templates).
		WithRooms(cfg.Map).
		SpawnPlayer(cfg.Player).
		SpawnMonsters().
		SpawnItems(cfg.Spawn.MaxItems, cfg.Spawn.ItemAttempts).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build level (seed %d): %w", seed, err)
	}

	return NewGameFromLevel(w, level, seed, cfg.Log.Capacity), nil
}

// NewGameFromLevel собирает игру вокруг уже заселённого мира.
func NewGameFromLevel(w *ecs.World, level *dungeon.Level, seed int64, logCapacity int) *Game {
	g := &Game{
		World:    w,
		Map:      level.Map,
		Log:      newGameLog(logCapacity, seed),
		Player:   level.Player,
		Seed:     seed,
		cmds:     ecs.NewCommands(),
		pipeline: systems.DefaultPipeline(),
		ctrl:     NewController(),
	}
	g.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      seed,
		"player":    g.Player.String(),
		"entities":  w.Len(),
	}).Info("Game created.")

	g.Log.Add("Welcome to the dungeon.")
	return g
}

func (g *Game) registerHandlers() {
	g.handlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMove:          handlers.WithDirection(actions.HandleMove),
		domain.ActionWait:          handlers.WithEmptyPayload(actions.HandleWait),
		domain.ActionPickup:        handlers.WithEmptyPayload(actions.HandlePickup),
		domain.ActionDrink:         handlers.WithBackpackItem(actions.HandleDrink),
		domain.ActionDrop:          handlers.WithBackpackItem(actions.HandleDrop),
		domain.ActionOpenInventory: handlers.WithEmptyPayload(actions.HandleOpenInventory),
		domain.ActionOpenDropMenu:  handlers.WithEmptyPayload(actions.HandleOpenDropMenu),
	}

	// В меню понимаются только выбор и отмена
	g.modal = map[enums.RunState]map[domain.ActionType]handlers.HandlerFunc{
		enums.RunStateShowInventory: {
			domain.ActionSelect: handlers.WithBackpackItem(actions.HandleDrink),
			domain.ActionCancel: handlers.WithEmptyPayload(actions.HandleCancel),
		},
		enums.RunStateShowDropItem: {
			domain.ActionSelect: handlers.WithBackpackItem(actions.HandleDrop),
			domain.ActionCancel: handlers.WithEmptyPayload(actions.HandleCancel),
		},
	}
}

// Replay возвращает сессию для сохранения: зерно и все принятые команды.
func (g *Game) Replay() *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:      g.Seed,
		Timestamp: time.Now().Unix(),
		Commands:  slices.Clone(g.journal),
	}
}

func (g *Game) State() enums.RunState { return g.ctrl.State() }
func (g *Game) Turn() int             { return g.turn }
func (g *Game) Dead() bool            { return g.dead }

// Advance - один кадр. В PreRun, PlayerTurn и MonsterTurn ровно один проход
// конвейера, cmd игнорируется. В AwaitingInput и меню cmd разрешается в
// переход; nil означает "ввода нет".
func (g *Game) Advance(cmd *domain.Command) (enums.RunState, error) {
	if g.dead {
		return g.ctrl.State(), ErrPlayerDead
	}

	var err error
	switch state := g.ctrl.State(); state {
	case enums.RunStatePreRun:
		g.runPass(state)
		err = g.ctrl.Fire(EventWarmup)
	case enums.RunStatePlayerTurn:
		g.runPass(state)
		g.turn++
		err = g.ctrl.Fire(EventEndPlayerTurn)
	case enums.RunStateMonsterTurn:
		g.runPass(state)
		err = g.ctrl.Fire(EventEndMonsterTurn)
	default:
		if cmd == nil {
			return state, nil
		}
		// В журнал попадают только принятые команды, иначе реплей споткнётся о ту же ошибку
		if err = g.dispatch(state, cmd); err == nil {
			g.journal = append(g.journal, *cmd)
		}
	}

	if err != nil {
		return g.ctrl.State(), err
	}
	if g.dead {
		return g.ctrl.State(), ErrPlayerDead
	}
	return g.ctrl.State(), nil
}

// RunUntilInput подаёт cmd и крутит кадры, пока автомат снова не ждёт ввода.
func (g *Game) RunUntilInput(cmd *domain.Command) (enums.RunState, error) {
	state, err := g.settle()
	if err != nil {
		return state, err
	}
	if cmd == nil {
		return state, nil
	}
	if _, err := g.Advance(cmd); err != nil {
		return g.ctrl.State(), err
	}
	return g.settle()
}

func (g *Game) settle() (enums.RunState, error) {
	state := g.ctrl.State()
	for !state.NeedsInput() {
		var err error
		if state, err = g.Advance(nil); err != nil {
			return state, err
		}
	}
	return state, nil
}

func (g *Game) dispatch(state enums.RunState, cmd *domain.Command) error {
	if cmd.Action == domain.ActionUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	table := g.handlers
	if state.IsModal() {
		table = g.modal[state]
	}
	handler, ok := table[cmd.Action]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"state":     state.String(),
			"command":   cmd.String(),
		}).Debug("Command ignored in this state.")
		return nil
	}

	res, err := handler(g.handlerContext(), cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Action, err)
	}
	if res.Msg != "" {
		g.Log.Add(res.Msg)
	}

	event := outcomeEvent(res.Next, state)
	if event == "" || !g.ctrl.Can(event) {
		return nil
	}
	return g.ctrl.Fire(event)
}

func outcomeEvent(o handlers.Outcome, state enums.RunState) string {
	switch o {
	case handlers.OutcomeTurn:
		if state.IsModal() {
			return EventSelect
		}
		return EventAct
	case handlers.OutcomeInventory:
		return EventOpenInventory
	case handlers.OutcomeDropMenu:
		return EventOpenDrop
	case handlers.OutcomeCancel:
		return EventCancel
	}
	return ""
}

// runPass - проход конвейера, зачистка мёртвых и переиндексация карты,
// чтобы ввод игрока видел актуальную занятость.
func (g *Game) runPass(state enums.RunState) {
	ctx := g.systemContext(state)
	g.pipeline.Run(ctx)

	if systems.DeleteTheDead(ctx) && !g.dead {
		g.dead = true
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"seed":      g.Seed,
			"turn":      g.turn,
		}).Warn("Player died.")
	}

	systems.IndexMap(g.Map, ecs.Read[domain.Position](g.World), ecs.Read[domain.BlocksTile](g.World))
}

func (g *Game) systemContext(state enums.RunState) *systems.Context {
	return &systems.Context{
		World:    g.World,
		Cmds:     g.cmds,
		Map:      g.Map,
		Log:      g.Log,
		Player:   g.Player,
		RunState: state,
	}
}

func (g *Game) handlerContext() handlers.Context {
	return handlers.Context{World: g.World, Map: g.Map, Player: g.Player}
}
