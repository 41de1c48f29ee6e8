package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardStrings(t *testing.T) {
	cases := []struct {
		name  string
		card  func() Card
		long  string
		short string
		glyph string
	}{
		{
			name:  "ace of spades",
			card:  func() Card { c, _ := New(Ace, Spades); return c },
			long:  "Ace of Spades",
			short: "A♠",
			glyph: "🂡",
		},
		{
			name:  "ten of hearts",
			card:  func() Card { c, _ := New(Ten, Hearts); return c },
			long:  "10 of Hearts",
			short: "10♥",
			glyph: "🂺",
		},
		{
			name:  "queen of diamonds",
			card:  func() Card { c, _ := New(Queen, Diamonds); return c },
			long:  "Queen of Diamonds",
			short: "Q♦",
			glyph: "🃍",
		},
		{
			name:  "king of clubs",
			card:  func() Card { c, _ := New(King, Clubs); return c },
			long:  "King of Clubs",
			short: "K♣",
			glyph: "🃞",
		},
		{
			name:  "black joker",
			card:  func() Card { return NewJoker(Black) },
			long:  "Black Joker",
			short: "BJ",
			glyph: "🃏",
		},
		{
			name:  "red joker",
			card:  func() Card { return NewJoker(Red) },
			long:  "Red Joker",
			short: "RJ",
			glyph: "🂿",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.card()
			assert.Equal(t, tc.long, c.String())
			assert.Equal(t, tc.short, c.Short())
			assert.Equal(t, tc.glyph, c.Glyph())
			assert.Equal(t, tc.long, c.Format(false))
			assert.Equal(t, tc.short, c.Format(true))
		})
	}
}

func TestSuitSymbol(t *testing.T) {
	c, _ := New(Two, Spades)
	assert.Equal(t, "♠", c.SuitSymbol())
	assert.Equal(t, "R", NewJoker(Red).SuitSymbol())
	assert.Equal(t, "B", NewJoker(Black).SuitSymbol())
}
