package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/mindyourbusiness/deck"
	"github.com/minaorangina/mindyourbusiness/protocol"
)

var (
	ErrNilGame                = errors.New("game is nil")
	ErrWrongNumberOfPlayers   = errors.New("exactly 2 players required")
	ErrGameNotStarted         = errors.New("game has not started")
	ErrGameAlreadyStarted     = errors.New("game has already started")
	ErrGameUnexpectedResponse = errors.New("game received unexpected response")
	ErrGameAwaitingResponse   = errors.New("game is awaiting a response")
	ErrUnexpectedPlayer       = errors.New("it is not this player's move")
	ErrUnexpectedCommand      = errors.New("that command is not allowed now")
	ErrRankNotHeld            = errors.New("you cannot ask for a rank you don't have")
	ErrNotFourOfAKind         = errors.New("you do not have four of that rank")
	ErrWrongRank              = errors.New("wrong rank to give")
	ErrShortDeal              = errors.New("not enough cards in the deck to deal")
	ErrInvalidGameState       = errors.New("invalid game state")
	ErrGameOver               = errors.New("game is already over")
)

const (
	numPlayers   = 2
	handSize     = 6
	suitsPerRank = 4
	maxSets      = deck.NumRanks
)

type Game interface {
	Start() error
	Next() ([]protocol.OutboundMessage, error)
	ReceiveResponse(protocol.InboundMessage) ([]protocol.OutboundMessage, error)
	AwaitingResponse() protocol.Cmd
	GameOver() bool
}

type mindYourBusiness struct {
	Deck            deck.Deck
	PlayerCards     map[string]*PlayerCards
	PlayerInfo      []protocol.PlayerInfo
	CurrentTurnIdx  int
	CurrentPlayer   protocol.PlayerInfo
	Phase           Phase
	ExpectedCommand protocol.Cmd
	expectedFrom    string
	prompt          protocol.OutboundMessage
	askedRank       deck.Rank
	reason          drawReason
	endTurnPending  bool
	dealt           bool
	gamePlay        GamePlayState
	rng             *rand.Rand
}

// GameOpts describes a game already in progress
type GameOpts struct {
	Deck          deck.Deck
	PlayerCards   map[string]*PlayerCards
	Players       []protocol.PlayerInfo
	CurrentPlayer protocol.PlayerInfo
	Phase         Phase
	Rand          *rand.Rand
}

// NewGame constructs a new game of Mind Your Business. The first player in
// playerInfo takes the first turn.
func NewGame(playerInfo []protocol.PlayerInfo, rng *rand.Rand) (*mindYourBusiness, error) {
	if len(playerInfo) != numPlayers {
		return nil, ErrWrongNumberOfPlayers
	}
	if rng == nil {
		rng = deck.NewRand(0)
	}

	g := &mindYourBusiness{
		Deck:        deck.New(),
		PlayerCards: map[string]*PlayerCards{},
		PlayerInfo:  playerInfo,
		Phase:       trading,
		rng:         rng,
	}
	for _, info := range playerInfo {
		g.PlayerCards[info.PlayerID] = NewPlayerCards(nil, nil)
	}

	return g, nil
}

// ExistingGame constructs a game from a known state. The deal has already happened.
func ExistingGame(opts GameOpts) *mindYourBusiness {
	if len(opts.Players) != numPlayers {
		panic(ErrWrongNumberOfPlayers.Error())
	}

	g := &mindYourBusiness{
		Deck:          opts.Deck,
		PlayerCards:   opts.PlayerCards,
		PlayerInfo:    opts.Players,
		CurrentPlayer: opts.CurrentPlayer,
		Phase:         opts.Phase,
		rng:           opts.Rand,
		dealt:         true,
		gamePlay:      gameStarted,
	}

	if g.Deck == nil {
		g.Deck = deck.Deck{}
	}
	if g.PlayerCards == nil {
		g.PlayerCards = map[string]*PlayerCards{}
	}
	for _, info := range g.PlayerInfo {
		if g.PlayerCards[info.PlayerID] == nil {
			g.PlayerCards[info.PlayerID] = NewPlayerCards(nil, nil)
		}
	}
	if g.Phase == 0 {
		g.Phase = trading
	}
	if g.rng == nil {
		g.rng = deck.NewRand(0)
	}

	// who's turn is it
	g.CurrentTurnIdx = 0
	for i, info := range g.PlayerInfo {
		if info.PlayerID == g.CurrentPlayer.PlayerID {
			g.CurrentTurnIdx = i
			break
		}
	}
	g.CurrentPlayer = g.PlayerInfo[g.CurrentTurnIdx]

	return g
}

func (g *mindYourBusiness) AwaitingResponse() protocol.Cmd {
	return g.ExpectedCommand
}

func (g *mindYourBusiness) GameOver() bool {
	return g.gamePlay == gameOver
}

// Start shuffles the deck and deals six cards to each player, one at a time.
func (g *mindYourBusiness) Start() error {
	if g == nil {
		return ErrNilGame
	}
	if g.gamePlay != gameNotStarted {
		return ErrGameAlreadyStarted
	}

	toDeal := len(g.PlayerInfo) * handSize
	if len(g.Deck) < toDeal {
		return fmt.Errorf("%w: need %d, have %d", ErrShortDeal, toDeal, len(g.Deck))
	}

	g.Deck.Shuffle(g.rng)

	// one card at a time from the top, alternating players
	dealt := g.Deck.Deal(toDeal)
	for i := range dealt {
		card := dealt[len(dealt)-1-i]
		info := g.PlayerInfo[i%len(g.PlayerInfo)]
		g.PlayerCards[info.PlayerID].Add(card)
	}

	g.CurrentTurnIdx = 0
	g.CurrentPlayer = g.PlayerInfo[0]
	g.gamePlay = gameStarted

	return nil
}

func (g *mindYourBusiness) Next() ([]protocol.OutboundMessage, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if g.gamePlay == gameNotStarted {
		return nil, ErrGameNotStarted
	}
	if g.ExpectedCommand != protocol.Null {
		return nil, ErrGameAwaitingResponse
	}
	if g.gamePlay == gameOver {
		return g.buildGameOverMessages(), nil
	}

	if !g.dealt {
		g.dealt = true
		return g.buildDealMessages(), nil
	}

	switch g.Phase {
	case trading:
		return g.nextTrading(), nil
	case setClaiming:
		return g.nextSetClaiming(), nil
	}

	// this shouldn't happen
	return nil, fmt.Errorf("%w: could not match phase %d", ErrInvalidGameState, g.Phase)
}

func (g *mindYourBusiness) nextTrading() []protocol.OutboundMessage {
	cards := g.currentCards()

	// four of a kind must go before anything else
	if cards.HasFourOfAKind() {
		return g.expect(protocol.Drop, g.buildDropMessages())
	}

	if g.endTurnPending {
		return g.endTurn("")
	}

	if len(cards.Hand) == 0 {
		if g.Deck.IsEmpty() {
			return g.endTurn(fmt.Sprintf("%s has no cards to ask for.", g.CurrentPlayer.Name))
		}
		g.reason = drawToReplenish
		return g.expect(protocol.Draw, g.buildDrawMessages("Your hand is empty. Enter 'draw' to draw a card."))
	}

	return g.expect(protocol.Ask, g.buildAskMessages())
}

func (g *mindYourBusiness) nextSetClaiming() []protocol.OutboundMessage {
	if g.winner() != nil {
		return g.endGame()
	}

	return g.expect(protocol.AskSet, g.buildAskSetMessages())
}

func (g *mindYourBusiness) ReceiveResponse(msg protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if g.gamePlay == gameNotStarted {
		return nil, ErrGameNotStarted
	}
	if g.gamePlay == gameOver {
		return g.buildGameOverMessages(), ErrGameOver
	}
	if g.ExpectedCommand == protocol.Null {
		return nil, ErrGameUnexpectedResponse
	}

	if msg.PlayerID != g.expectedFrom {
		err := fmt.Errorf("%w: %s", ErrUnexpectedPlayer, msg.PlayerID)
		return []protocol.OutboundMessage{g.buildErrorMessage(msg.PlayerID, err)}, err
	}

	// a voluntary drop is allowed in place of an ask
	dropInsteadOfAsk := g.ExpectedCommand == protocol.Ask && msg.Command == protocol.Drop
	if msg.Command != g.ExpectedCommand && !dropInsteadOfAsk {
		err := fmt.Errorf("%w: got %s, want %s", ErrUnexpectedCommand, msg.Command, g.ExpectedCommand)
		return g.reprompt(err)
	}

	switch msg.Command {
	case protocol.Drop:
		return g.receiveDrop(msg.Rank)
	case protocol.Ask:
		return g.receiveAsk(msg.Rank)
	case protocol.GiveCards:
		return g.receiveGiveCards(msg.Rank)
	case protocol.MindYourBusiness:
		return g.receiveMindYourBusiness()
	case protocol.Draw:
		return g.receiveDraw()
	case protocol.AskSet:
		return g.receiveAskSet(msg.Rank)
	}

	return nil, ErrInvalidGameState
}

func (g *mindYourBusiness) receiveDrop(r deck.Rank) ([]protocol.OutboundMessage, error) {
	if !r.Valid() {
		return g.reprompt(deck.ErrInvalidRank)
	}
	if !g.currentCards().DropFourOfAKind(r) {
		return g.reprompt(ErrNotFourOfAKind)
	}

	g.ExpectedCommand = protocol.Null
	return g.buildDroppedMessages(r), nil
}

func (g *mindYourBusiness) receiveAsk(r deck.Rank) ([]protocol.OutboundMessage, error) {
	if !r.Valid() {
		return g.reprompt(deck.ErrInvalidRank)
	}
	if !g.currentCards().HasRank(r) {
		return g.reprompt(ErrRankNotHeld)
	}

	g.askedRank = r
	opponent := g.opponent()
	if g.PlayerCards[opponent.PlayerID].HasRank(r) {
		return g.expectFrom(opponent.PlayerID, protocol.GiveCards, g.buildGiveCardsMessages(r)), nil
	}

	return g.expectFrom(opponent.PlayerID, protocol.MindYourBusiness, g.buildMindYourBusinessMessages(r)), nil
}

func (g *mindYourBusiness) receiveGiveCards(r deck.Rank) ([]protocol.OutboundMessage, error) {
	if r != g.askedRank {
		return g.reprompt(fmt.Errorf("%w: asked for %s", ErrWrongRank, g.askedRank.Symbol()))
	}

	opponentCards := g.PlayerCards[g.opponent().PlayerID]
	n := opponentCards.GiveAllOfRank(r, g.currentCards())

	// the asking player keeps the turn
	g.ExpectedCommand = protocol.Null
	return g.buildCardsReceivedMessages(r, n), nil
}

func (g *mindYourBusiness) receiveMindYourBusiness() ([]protocol.OutboundMessage, error) {
	g.ExpectedCommand = protocol.Null

	if g.Phase == setClaiming {
		return g.endTurn("Mind your business!"), nil
	}

	if g.Deck.IsEmpty() {
		return g.endTurn("Mind your business! No cards left in the deck."), nil
	}

	g.reason = drawAfterMiss
	return g.expect(protocol.Draw, g.buildDrawMessages("Mind your business! Enter 'draw' to draw a card.")), nil
}

func (g *mindYourBusiness) receiveDraw() ([]protocol.OutboundMessage, error) {
	g.ExpectedCommand = protocol.Null

	card, err := g.Deck.Draw()
	if err != nil {
		return g.endTurn("No cards left in the deck."), nil
	}
	g.currentCards().Add(card)

	lucky := g.reason == drawAfterMiss && card.Rank == g.askedRank
	if g.reason == drawAfterMiss && !lucky {
		// the drop check still happens before the turn passes
		g.endTurnPending = true
	}
	g.reason = noDraw

	return g.buildDrewMessages(card, lucky), nil
}

func (g *mindYourBusiness) receiveAskSet(r deck.Rank) ([]protocol.OutboundMessage, error) {
	if !r.Valid() {
		return g.reprompt(deck.ErrInvalidRank)
	}

	opponent := g.opponent()
	if TransferSet(r, g.PlayerCards[opponent.PlayerID], g.currentCards()) {
		g.ExpectedCommand = protocol.Null
		msgs := g.buildSetClaimedMessages(r)
		if g.winner() != nil {
			msgs = append(msgs, g.endGame()...)
		}
		return msgs, nil
	}

	g.askedRank = r
	return g.expectFrom(opponent.PlayerID, protocol.MindYourBusiness, g.buildMindYourBusinessMessages(r)), nil
}

// expect waits for cmd from the current player
func (g *mindYourBusiness) expect(cmd protocol.Cmd, msgs []protocol.OutboundMessage) []protocol.OutboundMessage {
	return g.expectFrom(g.CurrentPlayer.PlayerID, cmd, msgs)
}

func (g *mindYourBusiness) expectFrom(playerID string, cmd protocol.Cmd, msgs []protocol.OutboundMessage) []protocol.OutboundMessage {
	g.ExpectedCommand = cmd
	g.expectedFrom = playerID
	for _, m := range msgs {
		if m.PlayerID == playerID && m.ShouldRespond {
			g.prompt = m
		}
	}
	return msgs
}

func (g *mindYourBusiness) reprompt(err error) ([]protocol.OutboundMessage, error) {
	m := g.prompt
	m.Error = err.Error()
	return []protocol.OutboundMessage{m}, err
}

// endTurn passes the turn to the other player. The switch to set claiming
// only ever happens here, between turns.
func (g *mindYourBusiness) endTurn(note string) []protocol.OutboundMessage {
	g.askedRank = deck.NullRank
	g.reason = noDraw
	g.endTurnPending = false
	g.ExpectedCommand = protocol.Null

	previous := g.CurrentPlayer
	g.turn()
	msgs := g.buildEndOfTurnMessages(previous, note)

	if g.Phase == trading && g.totalSets() == maxSets {
		g.Phase = setClaiming
		msgs = append(msgs, g.buildPhaseTwoMessages()...)
		return msgs
	}

	if g.Phase == trading && g.Deck.IsEmpty() && g.handsEmpty() {
		msgs = append(msgs, g.endGame()...)
	}

	return msgs
}

func (g *mindYourBusiness) endGame() []protocol.OutboundMessage {
	g.gamePlay = gameOver
	g.ExpectedCommand = protocol.Null
	return g.buildGameOverMessages()
}

// turn changes the CurrentPlayer to the other player.
func (g *mindYourBusiness) turn() {
	g.CurrentTurnIdx = (g.CurrentTurnIdx + 1) % len(g.PlayerInfo)
	g.CurrentPlayer = g.PlayerInfo[g.CurrentTurnIdx]
}

func (g *mindYourBusiness) opponent() protocol.PlayerInfo {
	return g.PlayerInfo[(g.CurrentTurnIdx+1)%len(g.PlayerInfo)]
}

func (g *mindYourBusiness) currentCards() *PlayerCards {
	return g.PlayerCards[g.CurrentPlayer.PlayerID]
}

func (g *mindYourBusiness) totalSets() int {
	total := 0
	for _, pc := range g.PlayerCards {
		total += pc.SetCount()
	}
	return total
}

func (g *mindYourBusiness) handsEmpty() bool {
	for _, pc := range g.PlayerCards {
		if len(pc.Hand) > 0 {
			return false
		}
	}
	return true
}

// winner returns the player holding all 13 sets, if any
func (g *mindYourBusiness) winner() *protocol.PlayerInfo {
	for i, info := range g.PlayerInfo {
		if g.PlayerCards[info.PlayerID].SetCount() == maxSets {
			return &g.PlayerInfo[i]
		}
	}
	return nil
}
