package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/minaorangina/mindyourbusiness/config"
	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/engine"
	"github.com/minaorangina/mindyourbusiness/game"
	"github.com/pterm/pterm"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}

	logger := engine.NewLogger(os.Stderr, cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := deck.NewRand(cfg.Seed)

	players := engine.NewPlayers(
		engine.NewCLIPlayer(engine.NewID(), cfg.PlayerName, os.Stdin, os.Stdout),
		engine.NewComputerPlayer(engine.NewID(), cfg.OpponentName, rng, logger),
	)

	g, err := game.NewGame(players.Info(), rng)
	if err != nil {
		logger.Error("could not create game", "error", err)
		return 1
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		Game:    g,
		Players: players,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("could not create game engine", "error", err)
		return 1
	}

	logger.Debug("starting", "game", ge.ID(), "seed", cfg.Seed)

	err = ge.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrPlayerQuit), errors.Is(err, context.Canceled):
		logger.Info("game ended early", "reason", err.Error())
	default:
		logger.Error("game stopped", "error", err)
		return 1
	}

	return 0
}
