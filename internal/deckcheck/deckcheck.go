// Package deckcheck verifies a described deck composition against the
// standard 54-card deck.
package deckcheck

import (
	"fmt"
	"strings"

	"github.com/lmeunier/cardstock/internal/card"
	"github.com/lmeunier/cardstock/internal/deck"
)

// Result holds the outcome of a composition check. Errors are specs that do
// not name a card at all; warnings point out duplicates and cards missing
// against the standard deck.
type Result struct {
	Errors   []string
	Warnings []string
	Deck     *deck.Deck
}

// Checker validates a list of card specs such as "Queen of Hearts",
// "1 of Spades", or "Red Joker".
type Checker struct {
	specs []string
}

// NewChecker creates a checker for the given specs.
func NewChecker(specs []string) *Checker {
	return &Checker{specs: specs}
}

// ParseSpec turns one long-form card description into a card. Accepted
// forms are "<Rank> of <Suit>" with names or numerals on either side, and
// "<Color> Joker".
func ParseSpec(spec string) (card.Card, error) {
	s := strings.TrimSpace(spec)
	if colorName, ok := strings.CutSuffix(s, " Joker"); ok {
		return card.ParseJoker(colorName)
	}
	rankName, suitName, ok := strings.Cut(s, " of ")
	if !ok {
		return card.Card{}, fmt.Errorf("unrecognized card spec: %q", spec)
	}
	return card.Parse(rankName, suitName)
}

// Check parses every spec and compares the resulting composition with the
// standard deck. Unparseable specs become errors; duplicate and missing
// cards become warnings. The parsed deck is returned on the result so
// callers can keep working with it.
func (ch *Checker) Check() *Result {
	result := &Result{Deck: deck.New()}

	for _, spec := range ch.specs {
		c, err := ParseSpec(spec)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if result.Deck.Contains(c) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("duplicate card: %s", c))
		}
		result.Deck.Add(c)
	}

	var missing []string
	for _, c := range deck.Standard().Cards() {
		if !result.Deck.Contains(c) {
			missing = append(missing, c.String())
		}
	}
	if n := len(missing); n > 0 && n <= 6 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("missing from a standard deck: %s", strings.Join(missing, ", ")))
	} else if n > 6 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d cards missing from a standard deck", n))
	}

	return result
}
