package deck

import (
	"errors"
	"math/rand"
	"time"
)

var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a deck of cards. The top of the deck is the end of the slice.
type Deck []Card

// New creates a deck of cards
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := Hearts; suit <= Spades; suit++ {
		for _, rank := range AllRanks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewRand returns a random source for a game session.
// A zero seed means "seed from the clock".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes the deck in place (Fisher-Yates).
// The random source belongs to the caller so that it is seeded once per session.
func (d *Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if d.IsEmpty() {
		return Card{}, ErrEmptyDeck
	}
	top := len(*d) - 1
	c := (*d)[top]
	*d = (*d)[:top]
	return c, nil
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}

// IsEmpty reports whether there are no cards left
func (d Deck) IsEmpty() bool {
	return len(d) == 0
}
