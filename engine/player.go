package engine

import (
	"context"
	"errors"

	"github.com/minaorangina/mindyourbusiness/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrPlayerQuit       = errors.New("player has left the game")
	ErrUnexpectedPrompt = errors.New("player can't answer this prompt")
)

// NewID constructs a player or game ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player interface {
	ID() string
	Name() string
	Info() protocol.PlayerInfo
	// Send delivers a message that needs no reply
	Send(msg protocol.OutboundMessage) error
	// Respond delivers a prompt and waits for the player's answer
	Respond(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error)
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if got := p.ID(); got == id {
			return p, true
		}
	}
	return nil, false
}

// Info lists the players in turn order
func (ps Players) Info() []protocol.PlayerInfo {
	info := []protocol.PlayerInfo{}
	for _, p := range ps {
		info = append(info, p.Info())
	}
	return info
}
