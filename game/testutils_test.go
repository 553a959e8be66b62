package game

import (
	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

var twoPlayers = func() []protocol.PlayerInfo {
	return []protocol.PlayerInfo{{PlayerID: "p1", Name: "User"}, {PlayerID: "p2", Name: "Computer"}}
}

func fourOf(r deck.Rank) []deck.Card {
	return []deck.Card{
		deck.NewCard(r, deck.Hearts),
		deck.NewCard(r, deck.Diamonds),
		deck.NewCard(r, deck.Clubs),
		deck.NewCard(r, deck.Spades),
	}
}

func combineCards(cards []deck.Card, toAdd ...deck.Card) []deck.Card {
	combined := append([]deck.Card{}, cards...)
	return append(combined, toAdd...)
}

// deckWithout returns a full deck minus the given cards, with the top card last
func deckWithout(top []deck.Card, exclude ...[]deck.Card) deck.Deck {
	excluded := map[deck.Card]struct{}{}
	for _, group := range append(exclude, top) {
		for _, c := range group {
			excluded[c] = struct{}{}
		}
	}

	d := deck.Deck{}
	for _, c := range deck.New() {
		if _, ok := excluded[c]; !ok {
			d = append(d, c)
		}
	}
	return append(d, top...)
}

func countCards(g *mindYourBusiness) int {
	total := len(g.Deck)
	for _, pc := range g.PlayerCards {
		total += len(pc.Hand) + suitsPerRank*pc.SetCount()
	}
	return total
}

func promptFor(msgs []protocol.OutboundMessage) (protocol.OutboundMessage, bool) {
	for _, m := range msgs {
		if m.ShouldRespond {
			return m, true
		}
	}
	return protocol.OutboundMessage{}, false
}

func commandsOf(msgs []protocol.OutboundMessage) []protocol.Cmd {
	cmds := []protocol.Cmd{}
	for _, m := range msgs {
		cmds = append(cmds, m.Command)
	}
	return cmds
}
