package protocol

import (
	"github.com/minaorangina/mindyourbusiness/deck"
)

// PlayerInfo identifies a player
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from Player to Game
type InboundMessage struct {
	PlayerID string    `json:"playerID"`
	Command  Cmd       `json:"command"`
	Rank     deck.Rank `json:"rank,omitempty"`
}

// OutboundMessage is a message from Game to Player
type OutboundMessage struct {
	PlayerID      string      `json:"playerID"`
	Command       Cmd         `json:"command"`
	Message       string      `json:"message"`
	Hand          []deck.Card `json:"hand"`
	Sets          []deck.Rank `json:"sets"`
	Opponent      Opponent    `json:"opponent"`
	DeckCount     int         `json:"deckCount"`
	Rank          deck.Rank   `json:"rank,omitempty"`
	Drawn         *deck.Card  `json:"drawn,omitempty"`
	CurrentTurn   PlayerInfo  `json:"currentTurn"`
	Phase         Phase       `json:"phase"`
	ShouldRespond bool        `json:"shouldRespond"`
	Winner        *PlayerInfo `json:"winner,omitempty"`
	Error         string      `json:"error,omitempty"`
}

// Opponent is the public view of the other player
type Opponent struct {
	PlayerID  string      `json:"playerID"`
	Name      string      `json:"name"`
	HandCount int         `json:"handCount"`
	Sets      []deck.Rank `json:"sets"`
}

// Phase is the stage of the game a message was sent in
type Phase int

const (
	// PhaseTrading is asking, drawing and dropping four of a kind
	PhaseTrading Phase = iota + 1
	// PhaseSetClaiming starts once all 13 sets are out
	PhaseSetClaiming
)

func (p Phase) String() string {
	switch p {
	case PhaseTrading:
		return "trading"
	case PhaseSetClaiming:
		return "set claiming"
	}
	return "unknown"
}

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	Deal
	Ask
	GiveCards
	MindYourBusiness
	Draw
	Drop
	AskSet
	CardsReceived
	Drew
	Dropped
	SetClaimed
	EndOfTurn
	PhaseTwo
	GameOver
	Error
)

var CmdNames = map[Cmd]string{
	Null:             "Null",
	Deal:             "Deal",
	Ask:              "Ask",
	GiveCards:        "GiveCards",
	MindYourBusiness: "MindYourBusiness",
	Draw:             "Draw",
	Drop:             "Drop",
	AskSet:           "AskSet",
	CardsReceived:    "CardsReceived",
	Drew:             "Drew",
	Dropped:          "Dropped",
	SetClaimed:       "SetClaimed",
	EndOfTurn:        "EndOfTurn",
	PhaseTwo:         "PhaseTwo",
	GameOver:         "GameOver",
	Error:            "Error",
}

func (c Cmd) String() string {
	return CmdNames[c]
}
