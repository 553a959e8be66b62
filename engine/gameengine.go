package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minaorangina/mindyourbusiness/game"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

// playState represents the state of the engine
// idle -> not started
// inProgress -> game in progress
// finished -> game over
type playState int

func (ps playState) String() string {
	switch ps {
	case idle:
		return "idle"
	case inProgress:
		return "inProgress"
	case finished:
		return "finished"
	}
	return ""
}

const (
	idle playState = iota
	inProgress
	finished
)

var (
	ErrNoGame         = errors.New("game engine needs a game")
	ErrUnknownPlayer  = errors.New("message for a player who isn't in this game")
	ErrAlreadyRunning = errors.New("game engine has already run")
)

type GameEngineOpts struct {
	GameID  string
	Game    game.Game
	Players Players
	Logger  *slog.Logger
}

// gameEngine carries messages between a Game and its Players
type gameEngine struct {
	id        string
	game      game.Game
	players   Players
	playState playState
	logger    *slog.Logger
}

func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNoGame
	}
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}

	return &gameEngine{
		id:      opts.GameID,
		game:    opts.Game,
		players: opts.Players,
		logger:  opts.Logger.With("game", opts.GameID),
	}, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) Players() Players {
	return ge.players
}

// Run starts the game and plays it to the end. It returns early if ctx is
// cancelled, a player leaves, or the game reports an error it can't recover from.
func (ge *gameEngine) Run(ctx context.Context) error {
	if ge.playState != idle {
		return ErrAlreadyRunning
	}

	// a game that's already under way is picked up where it is
	if err := ge.game.Start(); err != nil && !errors.Is(err, game.ErrGameAlreadyStarted) {
		return fmt.Errorf("starting game: %w", err)
	}
	ge.playState = inProgress
	ge.logger.Info("game started", "players", len(ge.players))

	for !ge.game.GameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		msgs, err := ge.game.Next()
		if err != nil {
			return fmt.Errorf("advancing game: %w", err)
		}

		if err := ge.play(ctx, msgs); err != nil {
			return err
		}
	}

	ge.playState = finished
	ge.logger.Info("game over")

	return nil
}

// play delivers msgs, then keeps collecting answers until the game stops asking
// for one.
func (ge *gameEngine) play(ctx context.Context, msgs []protocol.OutboundMessage) error {
	for {
		prompt, err := ge.messagePlayers(msgs)
		if err != nil {
			return err
		}
		if prompt == nil {
			return nil
		}

		p, _ := ge.players.Find(prompt.PlayerID)
		response, err := p.Respond(ctx, *prompt)
		if err != nil {
			return fmt.Errorf("waiting for %s: %w", p.Name(), err)
		}
		ge.logger.Debug("received",
			"player", p.Name(),
			"command", response.Command.String(),
			"rank", response.Rank.String(),
		)

		msgs, err = ge.game.ReceiveResponse(response)
		if err != nil {
			if !hasPrompt(msgs) {
				return fmt.Errorf("receiving from %s: %w", p.Name(), err)
			}
			ge.logger.Debug("rejected", "player", p.Name(), "error", err.Error())
		}
	}
}

// messagePlayers sends every message that needs no reply and returns the
// prompt, if there is one.
func (ge *gameEngine) messagePlayers(msgs []protocol.OutboundMessage) (*protocol.OutboundMessage, error) {
	var prompt *protocol.OutboundMessage

	for i, m := range msgs {
		p, ok := ge.players.Find(m.PlayerID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, m.PlayerID)
		}

		if m.ShouldRespond {
			prompt = &msgs[i]
			continue
		}

		ge.logger.Debug("dispatch", "player", p.Name(), "command", m.Command.String())
		if err := p.Send(m); err != nil {
			return nil, fmt.Errorf("sending to %s: %w", p.Name(), err)
		}
	}

	return prompt, nil
}

func hasPrompt(msgs []protocol.OutboundMessage) bool {
	for _, m := range msgs {
		if m.ShouldRespond {
			return true
		}
	}
	return false
}
