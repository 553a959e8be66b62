package game

import (
	"sort"

	"github.com/minaorangina/mindyourbusiness/deck"
)

// PlayerCards holds a player's hand and the ranks they have collected as
// complete sets of four.
type PlayerCards struct {
	Hand []deck.Card
	Sets []deck.Rank
}

func NewPlayerCards(hand []deck.Card, sets []deck.Rank) *PlayerCards {
	if hand == nil {
		hand = []deck.Card{}
	}
	if sets == nil {
		sets = []deck.Rank{}
	}

	return &PlayerCards{
		Hand: hand,
		Sets: sets,
	}
}

// Add puts cards into the hand
func (pc *PlayerCards) Add(cards ...deck.Card) {
	pc.Hand = append(pc.Hand, cards...)
}

func (pc *PlayerCards) HasRank(r deck.Rank) bool {
	return pc.CountRank(r) > 0
}

func (pc *PlayerCards) CountRank(r deck.Rank) int {
	count := 0
	for _, c := range pc.Hand {
		if c.Rank == r {
			count++
		}
	}
	return count
}

// Ranks returns the distinct ranks in the hand, lowest first
func (pc *PlayerCards) Ranks() []deck.Rank {
	counts := pc.rankCounts()
	ranks := []deck.Rank{}
	for r := range counts {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// GiveAllOfRank moves every card of rank r into target's hand and returns
// how many cards moved.
func (pc *PlayerCards) GiveAllOfRank(r deck.Rank, target *PlayerCards) int {
	kept := []deck.Card{}
	given := []deck.Card{}
	for _, c := range pc.Hand {
		if c.Rank == r {
			given = append(given, c)
		} else {
			kept = append(kept, c)
		}
	}

	pc.Hand = kept
	target.Add(given...)

	return len(given)
}

func (pc *PlayerCards) HasFourOfAKind() bool {
	return len(pc.FourOfAKindRanks()) > 0
}

// FourOfAKindRanks returns every rank held four times, lowest first
func (pc *PlayerCards) FourOfAKindRanks() []deck.Rank {
	ranks := []deck.Rank{}
	counts := pc.rankCounts()
	for _, r := range deck.AllRanks() {
		if counts[r] == suitsPerRank {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// DropFourOfAKind removes the four cards of rank r from the hand and records
// r as a collected set. It does nothing and returns false unless exactly four
// are held.
func (pc *PlayerCards) DropFourOfAKind(r deck.Rank) bool {
	if pc.CountRank(r) != suitsPerRank {
		return false
	}

	kept := []deck.Card{}
	for _, c := range pc.Hand {
		if c.Rank != r {
			kept = append(kept, c)
		}
	}
	pc.Hand = kept
	pc.Sets = append(pc.Sets, r)

	return true
}

func (pc *PlayerCards) OwnsSet(r deck.Rank) bool {
	for _, s := range pc.Sets {
		if s == r {
			return true
		}
	}
	return false
}

func (pc *PlayerCards) SetCount() int {
	return len(pc.Sets)
}

// TransferSet moves the set of rank r from one player to another.
// It returns false, changing nothing, if from does not own r.
func TransferSet(r deck.Rank, from, to *PlayerCards) bool {
	for i, s := range from.Sets {
		if s == r {
			from.Sets = append(from.Sets[:i:i], from.Sets[i+1:]...)
			to.Sets = append(to.Sets, r)
			return true
		}
	}
	return false
}

func (pc *PlayerCards) rankCounts() map[deck.Rank]int {
	counts := map[deck.Rank]int{}
	for _, c := range pc.Hand {
		counts[c.Rank]++
	}
	return counts
}
