package game

import (
	"fmt"

	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

func (g *mindYourBusiness) buildBaseMessage(playerID string) protocol.OutboundMessage {
	playerCards, ok := g.PlayerCards[playerID]
	if !ok {
		playerCards = NewPlayerCards(nil, nil)
	}

	return protocol.OutboundMessage{
		PlayerID:    playerID,
		CurrentTurn: g.CurrentPlayer,
		Hand:        append([]deck.Card{}, playerCards.Hand...),
		Sets:        append([]deck.Rank{}, playerCards.Sets...),
		Opponent:    g.buildOpponent(playerID),
		DeckCount:   len(g.Deck),
		Phase:       g.Phase,
	}
}

func (g *mindYourBusiness) buildOpponent(playerID string) protocol.Opponent {
	for _, p := range g.PlayerInfo {
		if p.PlayerID != playerID {
			pc := g.PlayerCards[p.PlayerID]
			return protocol.Opponent{
				PlayerID:  p.PlayerID,
				Name:      p.Name,
				HandCount: len(pc.Hand),
				Sets:      append([]deck.Rank{}, pc.Sets...),
			}
		}
	}
	return protocol.Opponent{}
}

// buildPerspectiveMessages builds one message for the current player and one
// for their opponent.
func (g *mindYourBusiness) buildPerspectiveMessages(cmd protocol.Cmd, currentText, opponentText string) []protocol.OutboundMessage {
	current := g.buildBaseMessage(g.CurrentPlayer.PlayerID)
	current.Command = cmd
	current.Message = currentText

	other := g.buildBaseMessage(g.opponent().PlayerID)
	other.Command = cmd
	other.Message = opponentText

	return []protocol.OutboundMessage{current, other}
}

func (g *mindYourBusiness) buildDealMessages() []protocol.OutboundMessage {
	msgs := []protocol.OutboundMessage{}
	for _, info := range g.PlayerInfo {
		m := g.buildBaseMessage(info.PlayerID)
		m.Command = protocol.Deal
		m.Message = fmt.Sprintf("Command: deal\nThe deck is shuffled and %d cards are dealt to each player. %s goes first.",
			handSize, g.CurrentPlayer.Name)
		msgs = append(msgs, m)
	}
	return msgs
}

func (g *mindYourBusiness) buildPromptMessage(cmd protocol.Cmd, playerID, text string) protocol.OutboundMessage {
	m := g.buildBaseMessage(playerID)
	m.Command = cmd
	m.Message = text
	m.ShouldRespond = true
	return m
}

func (g *mindYourBusiness) buildDropMessages() []protocol.OutboundMessage {
	return []protocol.OutboundMessage{
		g.buildPromptMessage(protocol.Drop, g.CurrentPlayer.PlayerID,
			"You have four of a kind. You must drop them before continuing."),
	}
}

func (g *mindYourBusiness) buildAskMessages() []protocol.OutboundMessage {
	return []protocol.OutboundMessage{
		g.buildPromptMessage(protocol.Ask, g.CurrentPlayer.PlayerID,
			"Your turn. Ask for a rank you hold."),
	}
}

func (g *mindYourBusiness) buildAskSetMessages() []protocol.OutboundMessage {
	return []protocol.OutboundMessage{
		g.buildPromptMessage(protocol.AskSet, g.CurrentPlayer.PlayerID,
			"Your turn. Ask for a set you want to claim."),
	}
}

func (g *mindYourBusiness) buildDrawMessages(text string) []protocol.OutboundMessage {
	return []protocol.OutboundMessage{
		g.buildPromptMessage(protocol.Draw, g.CurrentPlayer.PlayerID, text),
	}
}

func (g *mindYourBusiness) buildGiveCardsMessages(r deck.Rank) []protocol.OutboundMessage {
	m := g.buildPromptMessage(protocol.GiveCards, g.opponent().PlayerID,
		fmt.Sprintf("%s asks for rank %s! Give them your cards.", g.CurrentPlayer.Name, r.Symbol()))
	m.Rank = r
	return []protocol.OutboundMessage{m}
}

func (g *mindYourBusiness) buildMindYourBusinessMessages(r deck.Rank) []protocol.OutboundMessage {
	text := fmt.Sprintf("%s asks for rank %s, but you have none.", g.CurrentPlayer.Name, r.Symbol())
	if g.Phase == setClaiming {
		text = fmt.Sprintf("%s asks for the entire set of rank %s, but you don't own it.", g.CurrentPlayer.Name, r.Symbol())
	}

	m := g.buildPromptMessage(protocol.MindYourBusiness, g.opponent().PlayerID, text)
	m.Rank = r
	return []protocol.OutboundMessage{m}
}

func (g *mindYourBusiness) buildCardsReceivedMessages(r deck.Rank, n int) []protocol.OutboundMessage {
	msgs := g.buildPerspectiveMessages(protocol.CardsReceived,
		fmt.Sprintf("%s gives you %d card(s) of rank %s!", g.opponent().Name, n, r.Symbol()),
		fmt.Sprintf("You give %s %d card(s) of rank %s.", g.CurrentPlayer.Name, n, r.Symbol()),
	)
	for i := range msgs {
		msgs[i].Rank = r
	}
	return msgs
}

func (g *mindYourBusiness) buildDrewMessages(card deck.Card, lucky bool) []protocol.OutboundMessage {
	currentText := fmt.Sprintf("You drew: %s", card)
	opponentText := fmt.Sprintf("%s draws a card.", g.CurrentPlayer.Name)
	if lucky {
		currentText += "\nLucky draw! You drew the rank you asked for, so you ask again."
		opponentText += fmt.Sprintf(" It's the rank they asked for, so %s asks again.", g.CurrentPlayer.Name)
	}

	msgs := g.buildPerspectiveMessages(protocol.Drew, currentText, opponentText)
	msgs[0].Drawn = &card
	return msgs
}

func (g *mindYourBusiness) buildDroppedMessages(r deck.Rank) []protocol.OutboundMessage {
	msgs := g.buildPerspectiveMessages(protocol.Dropped,
		fmt.Sprintf("You dropped four of rank %s!", r.Symbol()),
		fmt.Sprintf("%s just dropped four of rank %s!", g.CurrentPlayer.Name, r.Symbol()),
	)
	for i := range msgs {
		msgs[i].Rank = r
	}
	return msgs
}

func (g *mindYourBusiness) buildSetClaimedMessages(r deck.Rank) []protocol.OutboundMessage {
	msgs := g.buildPerspectiveMessages(protocol.SetClaimed,
		fmt.Sprintf("You received the entire set of rank %s!", r.Symbol()),
		fmt.Sprintf("%s takes your set of rank %s.", g.CurrentPlayer.Name, r.Symbol()),
	)
	for i := range msgs {
		msgs[i].Rank = r
	}
	return msgs
}

// buildEndOfTurnMessages is called once the turn has already moved on
func (g *mindYourBusiness) buildEndOfTurnMessages(previous protocol.PlayerInfo, note string) []protocol.OutboundMessage {
	text := fmt.Sprintf("%s's turn is over. It's %s's turn.", previous.Name, g.CurrentPlayer.Name)
	if note != "" {
		text = note + "\n" + text
	}

	msgs := []protocol.OutboundMessage{}
	for _, info := range g.PlayerInfo {
		m := g.buildBaseMessage(info.PlayerID)
		m.Command = protocol.EndOfTurn
		m.Message = text
		msgs = append(msgs, m)
	}
	return msgs
}

func (g *mindYourBusiness) buildPhaseTwoMessages() []protocol.OutboundMessage {
	msgs := []protocol.OutboundMessage{}
	for _, info := range g.PlayerInfo {
		m := g.buildBaseMessage(info.PlayerID)
		m.Command = protocol.PhaseTwo
		m.Message = "All 13 sets are now distributed. The second phase of the game begins!"
		msgs = append(msgs, m)
	}
	return msgs
}

func (g *mindYourBusiness) buildGameOverMessages() []protocol.OutboundMessage {
	winner := g.winner()

	text := "Game over!"
	for _, info := range g.PlayerInfo {
		text += fmt.Sprintf("\n%s has collected %d sets.", info.Name, g.PlayerCards[info.PlayerID].SetCount())
	}
	if winner != nil {
		text += fmt.Sprintf("\n%s wins by collecting all sets!", winner.Name)
	} else {
		text += "\nNo one collected all 13 sets."
	}

	msgs := []protocol.OutboundMessage{}
	for _, info := range g.PlayerInfo {
		m := g.buildBaseMessage(info.PlayerID)
		m.Command = protocol.GameOver
		m.Message = text
		m.Winner = winner
		msgs = append(msgs, m)
	}
	return msgs
}

func (g *mindYourBusiness) buildErrorMessage(playerID string, err error) protocol.OutboundMessage {
	m := g.buildBaseMessage(playerID)
	m.Command = protocol.Error
	m.Error = err.Error()
	return m
}
