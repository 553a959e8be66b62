package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

// maxAskRetries bounds how hard the computer tries not to repeat its last ask
const maxAskRetries = 20

// ComputerPlayer picks its moves at random
type ComputerPlayer struct {
	id     string
	name   string
	rng    *rand.Rand
	logger *slog.Logger
	// last rank asked for this turn
	lastAsked deck.Rank
}

func NewComputerPlayer(id, name string, rng *rand.Rand, logger *slog.Logger) *ComputerPlayer {
	if rng == nil {
		rng = deck.NewRand(0)
	}
	if logger == nil {
		logger = discardLogger()
	}

	return &ComputerPlayer{
		id:     id,
		name:   name,
		rng:    rng,
		logger: logger,
	}
}

func (p *ComputerPlayer) ID() string {
	return p.id
}

func (p *ComputerPlayer) Name() string {
	return p.name
}

func (p *ComputerPlayer) Info() protocol.PlayerInfo {
	return protocol.PlayerInfo{PlayerID: p.id, Name: p.name}
}

func (p *ComputerPlayer) Send(msg protocol.OutboundMessage) error {
	if msg.Command == protocol.EndOfTurn || msg.Command == protocol.PhaseTwo {
		p.lastAsked = deck.NullRank
	}
	return nil
}

func (p *ComputerPlayer) Respond(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	if err := ctx.Err(); err != nil {
		return protocol.InboundMessage{}, err
	}

	response := protocol.InboundMessage{
		PlayerID: p.id,
		Command:  msg.Command,
	}

	switch msg.Command {
	case protocol.Drop:
		ranks := fourOfAKindRanks(msg.Hand)
		if len(ranks) == 0 {
			return protocol.InboundMessage{}, fmt.Errorf("%w: nothing to drop", ErrUnexpectedPrompt)
		}
		response.Rank = ranks[0]

	case protocol.Ask:
		rank, ok := p.chooseAsk(msg.Hand)
		if !ok {
			return protocol.InboundMessage{}, fmt.Errorf("%w: empty hand", ErrUnexpectedPrompt)
		}
		response.Rank = rank
		p.lastAsked = rank

	case protocol.GiveCards:
		response.Rank = msg.Rank

	case protocol.AskSet:
		response.Rank = deck.Rank(p.rng.Intn(deck.NumRanks) + 1)

	case protocol.MindYourBusiness, protocol.Draw:

	default:
		return protocol.InboundMessage{}, fmt.Errorf("%w: %s", ErrUnexpectedPrompt, msg.Command)
	}

	p.logger.Debug("computer move", "player", p.name, "command", response.Command.String(), "rank", response.Rank.Symbol())

	return response, nil
}

// chooseAsk picks uniformly from the distinct ranks in hand, trying not to
// repeat the previous ask of the same turn when there's another choice.
func (p *ComputerPlayer) chooseAsk(hand []deck.Card) (deck.Rank, bool) {
	ranks := distinctRanks(hand)
	if len(ranks) == 0 {
		return deck.NullRank, false
	}

	rank := ranks[p.rng.Intn(len(ranks))]
	for i := 0; i < maxAskRetries && len(ranks) > 1 && rank == p.lastAsked; i++ {
		rank = ranks[p.rng.Intn(len(ranks))]
	}

	return rank, true
}

func distinctRanks(hand []deck.Card) []deck.Rank {
	counts := rankCounts(hand)
	ranks := []deck.Rank{}
	for _, r := range deck.AllRanks() {
		if counts[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// fourOfAKindRanks scans Ace to King
func fourOfAKindRanks(hand []deck.Card) []deck.Rank {
	counts := rankCounts(hand)
	ranks := []deck.Rank{}
	for _, r := range deck.AllRanks() {
		if counts[r] == 4 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

func rankCounts(hand []deck.Card) map[deck.Rank]int {
	counts := map[deck.Rank]int{}
	for _, c := range hand {
		counts[c.Rank]++
	}
	return counts
}
