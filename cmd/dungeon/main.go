package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/agent"
	"dungeon-engine/internal/config"
	"dungeon-engine/internal/domain"
	"dungeon-engine/internal/engine"
	"dungeon-engine/internal/infrastructure/storage"
	"dungeon-engine/internal/version"
	"dungeon-engine/pkg/dungeon"
	"dungeon-engine/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to TOML config (default $DUNGEON_CONFIG or config/dungeon.toml)")
	flag.Int64Var(&opts.seed, "seed", 0, "World seed, overrides the config (0 keeps the config value)")
	flag.IntVar(&opts.turns, "turns", 200, "Max commands to feed in autopilot mode")
	flag.StringVar(&opts.scriptPath, "script", "", "File with one command per line (\"move 1 0\", \"wait\"); '-' for stdin")
	flag.StringVar(&opts.replayPath, "replay", "", "Path to .dgrp replay file to simulate")
	flag.StringVar(&opts.recordDir, "record", "", "Directory to save a .dgrp replay of this run")
	flag.Parse()

	logger.Log.Info(version.String())

	if err := run(opts); err != nil {
		logger.Log.WithError(err).Fatal("Dungeon run failed.")
	}
}

type options struct {
	configPath string
	seed       int64
	turns      int
	scriptPath string
	replayPath string
	recordDir  string
}

func run(opts options) error {
	path := config.ResolvePath(opts.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	var session *domain.ReplaySession
	if opts.replayPath != "" {
		if session, err = storage.NewReplayService("").Load(opts.replayPath); err != nil {
			return err
		}
		cfg.Seed = session.Seed
	}

	templates, err := dungeon.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return err
	}

	game, err := engine.NewGame(cfg, templates)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"config": path,
		"seed":   game.Seed,
	}).Info("Starting dungeon run...")

	// Прогрев: первый проход конвейера
	if _, err := game.RunUntilInput(nil); err != nil {
		return err
	}

	switch {
	case session != nil:
		err = playReplay(game, session)
	case opts.scriptPath != "":
		err = playScript(game, opts.scriptPath)
	default:
		err = playAutopilot(game, opts.turns)
	}
	if errors.Is(err, engine.ErrPlayerDead) {
		err = nil
	}

	report(game)

	if err == nil && opts.recordDir != "" {
		saved, saveErr := storage.NewReplayService(opts.recordDir).Save(game.Replay())
		if saveErr != nil {
			return saveErr
		}
		logger.Log.WithField("path", saved).Info("Replay saved.")
	}
	return err
}

func playReplay(game *engine.Game, session *domain.ReplaySession) error {
	logger.Log.WithFields(logrus.Fields{
		"seed":     session.Seed,
		"commands": len(session.Commands),
	}).Info("Mode: replay simulation")

	for i := range session.Commands {
		if _, err := game.RunUntilInput(&session.Commands[i]); err != nil {
			return err
		}
	}
	return nil
}

func playAutopilot(game *engine.Game, turns int) error {
	bot := agent.NewBot(game.Seed)
	for i := 0; i < turns; i++ {
		cmd := bot.Decide(game.Snapshot())
		if cmd == nil {
			return nil
		}
		if _, err := game.RunUntilInput(cmd); err != nil {
			return err
		}
	}
	return nil
}

func playScript(game *engine.Game, path string) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := domain.ParseCommand(text)
		if err != nil {
			return fmt.Errorf("script line %d: %w", line, err)
		}
		if _, err := game.RunUntilInput(cmd); err != nil {
			return fmt.Errorf("script line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func report(game *engine.Game) {
	snap := game.Snapshot()
	fields := logrus.Fields{
		"seed":  snap.Seed,
		"turns": snap.Turn,
		"dead":  snap.Dead,
		"state": snap.RunState,
	}
	if snap.Player != nil {
		fields["hp"] = fmt.Sprintf("%d/%d", snap.Player.HP, snap.Player.MaxHP)
	}
	logger.Log.WithFields(fields).Info("Run finished.")

	for i := len(snap.Logs) - 1; i >= 0; i-- {
		fmt.Println(snap.Logs[i])
	}
}
