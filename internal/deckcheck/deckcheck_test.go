package deckcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeunier/cardstock/internal/card"
	"github.com/lmeunier/cardstock/internal/deck"
)

func TestParseSpec(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"Ace of Spades", "Ace of Spades"},
		{"10 of Hearts", "10 of Hearts"},
		{"13 of 1", "King of Clubs"},
		{"  Queen of Diamonds ", "Queen of Diamonds"},
		{"Red Joker", "Red Joker"},
		{"Black Joker", "Black Joker"},
	}
	for _, tc := range cases {
		c, err := ParseSpec(tc.spec)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.want, c.String())
	}
}

func TestParseSpecErrors(t *testing.T) {
	_, err := ParseSpec("Ace Spades")
	assert.Error(t, err)
	_, err = ParseSpec("Knight of Hearts")
	assert.ErrorIs(t, err, card.ErrUnknownRank)
	_, err = ParseSpec("Green Joker")
	assert.ErrorIs(t, err, card.ErrUnknownColor)
}

func TestCheckFullStandardDeck(t *testing.T) {
	var specs []string
	for _, c := range deck.Standard().Cards() {
		specs = append(specs, c.String())
	}

	result := NewChecker(specs).Check()
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.Deck.Equal(deck.Standard()))
}

func TestCheckReportsDuplicatesAndMissing(t *testing.T) {
	result := NewChecker([]string{"Ace of Spades", "Ace of Spades"}).Check()

	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "duplicate card: Ace of Spades")
	assert.Contains(t, result.Warnings[1], "53 cards missing")
}

func TestCheckListsFewMissingCardsByName(t *testing.T) {
	var specs []string
	for _, c := range deck.Standard().Cards() {
		if c.IsJoker() {
			continue
		}
		specs = append(specs, c.String())
	}

	result := NewChecker(specs).Check()
	require.Len(t, result.Warnings, 1)
	assert.True(t, strings.Contains(result.Warnings[0], "Black Joker"))
	assert.True(t, strings.Contains(result.Warnings[0], "Red Joker"))
}

func TestCheckCollectsErrors(t *testing.T) {
	result := NewChecker([]string{"Ace of Spades", "bogus", "15 of Hearts"}).Check()
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Deck.Len(), "valid specs still build the deck")
}
