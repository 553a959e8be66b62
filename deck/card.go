package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	NullRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a suit
const NumRanks = 13

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankSymbols = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if !r.Valid() {
		return "???"
	}
	return rankNames[r]
}

// Symbol returns the short form of a rank, as typed on the command line
func (r Rank) Symbol() string {
	if !r.Valid() {
		return "???"
	}
	return rankSymbols[r]
}

// Valid reports whether r is one of Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// AllRanks returns every rank from Ace to King
func AllRanks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// ParseRank converts a command token (A, 2-10, J, Q, K) into a Rank.
// Letters are case-insensitive.
func ParseRank(token string) (Rank, error) {
	token = strings.ToUpper(strings.TrimSpace(token))

	switch token {
	case "A":
		return Ace, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < int(Two) || n > int(Ten) {
		return NullRank, fmt.Errorf("%w: %q", ErrInvalidRank, token)
	}

	return Rank(n), nil
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "???"
	}
	return suitNames[s]
}

// Card represents a playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. It panics if rank or suit are out of range.
func NewCard(rank Rank, suit Suit) Card {
	c, err := newCard(rank, suit)
	if err != nil {
		panic(err.Error())
	}
	return c
}

func newCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if suit < Hearts || suit > Spades {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
