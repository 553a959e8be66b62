package deck

import (
	"errors"
	"math/rand"
	"testing"

	utils "github.com/minaorangina/mindyourbusiness/internal"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest value card", NewCard(Ace, Hearts), "Ace of Hearts"},
		{"Specific card", NewCard(Queen, Clubs), "Queen of Clubs"},
		{"Highest value card", NewCard(King, Spades), "King of Spades"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.String(), c.expected)
	}

	t.Run("Out of range (should panic)", func(t *testing.T) {
		assert.Panics(t, func() { NewCard(King+1, Hearts) })
		assert.Panics(t, func() { NewCard(Four, Spades+1) })
		assert.Panics(t, func() { NewCard(NullRank, Hearts) })
	})

	t.Run("get rank", func(t *testing.T) {
		six := NewCard(Six, Suit(rand.Intn(4)))
		utils.AssertEqual(t, six.Rank.String(), "Six")
		utils.AssertEqual(t, six.Rank.Symbol(), "6")
	})

	t.Run("get suit", func(t *testing.T) {
		spade := NewCard(Rank(rand.Intn(13)+1), Spades)
		utils.AssertEqual(t, spade.Suit.String(), "Spades")
	})
}

func TestParseRank(t *testing.T) {
	tt := []struct {
		token string
		want  Rank
	}{
		{"A", Ace},
		{"a", Ace},
		{"2", Two},
		{"9", Nine},
		{"10", Ten},
		{" j ", Jack},
		{"Q", Queen},
		{"k", King},
	}

	for _, tc := range tt {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseRank(tc.token)
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, tc.want)
		})
	}

	t.Run("symbols round trip", func(t *testing.T) {
		for _, r := range AllRanks() {
			got, err := ParseRank(r.Symbol())
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, r)
		}
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, token := range []string{"", "1", "11", "0", "ace", "X", "-2", "1O"} {
			_, err := ParseRank(token)
			assert.True(t, errors.Is(err, ErrInvalidRank), "token %q", token)
		}
	})
}
