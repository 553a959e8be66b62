package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
	"github.com/pterm/pterm"
)

const (
	welcomeText  = "Welcome to Mind Your Business, %s! Type 'help' at any time to see the commands."
	dealtText    = "The cards have already been dealt."
	goodbyeText  = "Goodbye!"
	deckCountFmt = "Cards left in the deck: %d"
)

const helpText = `Commands:
  ask <rank>            ask your opponent for all their cards of a rank you hold
  drop <rank>           put down four of a kind as a set
  give <rank>           hand over the cards you were asked for
  mind your business!   tell your opponent you have none of what they asked for
  draw                  draw a card from the deck
  askset <rank>         (second phase) claim a set from your opponent
  hand                  show your cards again
  help                  show this message
Ranks: A 2 3 4 5 6 7 8 9 10 J Q K`

var promptHints = map[protocol.Cmd]string{
	protocol.Ask:              "Type 'ask <rank>'.",
	protocol.Drop:             "Type 'drop <rank>'.",
	protocol.GiveCards:        "Type 'give <rank>'.",
	protocol.MindYourBusiness: "Type 'mind your business!'.",
	protocol.Draw:             "Type 'draw'.",
	protocol.AskSet:           "Type 'askset <rank>'.",
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// renderMessage formats a message that needs no reply
func renderMessage(msg protocol.OutboundMessage) string {
	switch msg.Command {
	case protocol.PhaseTwo:
		return pterm.DefaultHeader.WithFullWidth().Sprint(msg.Message) + "\n"
	case protocol.GameOver:
		return pterm.DefaultBox.
			WithTitle("GAME OVER").
			WithTitleTopCenter().
			WithLeftPadding(4).
			WithRightPadding(4).
			Sprint(msg.Message) + "\n"
	case protocol.Error:
		return pterm.Error.Sprintln(msg.Error)
	case protocol.CardsReceived, protocol.Dropped, protocol.SetClaimed:
		return pterm.Success.Sprintln(msg.Message)
	}
	return pterm.Info.Sprintln(msg.Message)
}

// renderPrompt formats a message the player has to answer
func renderPrompt(msg protocol.OutboundMessage) string {
	text := ""
	if msg.Error != "" {
		text += pterm.Warning.Sprintln(msg.Error)
	}
	text += pterm.Info.Sprintln(msg.Message)
	if hint, ok := promptHints[msg.Command]; ok {
		text += pterm.FgGray.Sprint(hint) + "\n"
	}
	return text + "> "
}

// renderTable shows both players' cards from the recipient's point of view
func renderTable(msg protocol.OutboundMessage) string {
	data := pterm.TableData{
		{"Player", "Hand", "Sets"},
		{"You", handText(msg.Hand), setsText(msg.Sets)},
		{msg.Opponent.Name, fmt.Sprintf("%d card(s)", msg.Opponent.HandCount), setsText(msg.Opponent.Sets)},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		// the table can't be drawn, so fall back to plain text
		table = fmt.Sprintf("Hand: %s\nSets: %s", handText(msg.Hand), setsText(msg.Sets))
	}

	return table + "\n" + fmt.Sprintf(deckCountFmt, msg.DeckCount) + "\n"
}

func handText(hand []deck.Card) string {
	if len(hand) == 0 {
		return "(empty)"
	}

	sorted := append([]deck.Card{}, hand...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rank == sorted[j].Rank {
			return sorted[i].Suit < sorted[j].Suit
		}
		return sorted[i].Rank < sorted[j].Rank
	})

	cards := []string{}
	for _, c := range sorted {
		cards = append(cards, shortCard(c))
	}
	return strings.Join(cards, " ")
}

func setsText(sets []deck.Rank) string {
	if len(sets) == 0 {
		return "-"
	}

	sorted := append([]deck.Rank{}, sets...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	symbols := []string{}
	for _, r := range sorted {
		symbols = append(symbols, r.Symbol())
	}
	return fmt.Sprintf("%s (%d)", strings.Join(symbols, " "), len(sets))
}

func shortCard(c deck.Card) string {
	return c.Rank.Symbol() + suitSymbol(c.Suit)
}

func suitSymbol(s deck.Suit) string {
	switch s {
	case deck.Hearts:
		return pterm.LightRed("♥")
	case deck.Diamonds:
		return pterm.LightRed("♦")
	case deck.Clubs:
		return "♣"
	case deck.Spades:
		return "♠"
	}
	return "?"
}
