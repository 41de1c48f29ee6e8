package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lmeunier/cardstock/internal/card"
)

// Filter describes the criteria Select matches cards against. Rank and suit
// criteria are strings and accept names ("Queen", "Hearts"), numerals
// ("12", "4"), and "Joker" or "0" for the joker sentinel. A leading "!" or
// a negative numeral marks the value as an exclusion instead of an
// inclusion. Color is "" (unset), "Black", or "Red". Face is nil (unset) or
// a required face-card flag.
type Filter struct {
	Ranks []string
	Suits []string
	Color string
	Face  *bool
}

// FaceCards is a convenience for Filter.Face.
func FaceCards(want bool) *bool { return &want }

// criterion is one parsed rank or suit selector.
type criterion struct {
	value   int
	exclude bool
}

// rankValue resolves a rank selector to its numeric form, 0 selecting
// jokers.
func rankValue(s string) (int, error) {
	if s == "Joker" || s == "0" {
		return 0, nil
	}
	r, err := card.ParseRank(s)
	if err != nil {
		return 0, err
	}
	return int(r), nil
}

// suitValue resolves a suit selector to its numeric form, 0 selecting
// jokers.
func suitValue(s string) (int, error) {
	if s == "Joker" || s == "0" {
		return 0, nil
	}
	v, err := card.ParseSuit(s)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// parseCriterion splits the exclusion marker off a selector before
// resolving its value. "!Queen" and "-12" both exclude queens.
func parseCriterion(s string, value func(string) (int, error)) (criterion, error) {
	if rest, ok := strings.CutPrefix(s, "!"); ok {
		v, err := value(rest)
		return criterion{value: v, exclude: true}, err
	}
	if n, err := strconv.Atoi(s); err == nil && n < 0 {
		v, err := value(strconv.Itoa(-n))
		return criterion{value: v, exclude: true}, err
	}
	v, err := value(s)
	return criterion{value: v}, err
}

// selectStage runs one criterion family over the working set: exclusions
// first, removing every match, then inclusions, rebuilding the set as the
// concatenation of the matches of each inclusion value in the order given.
// A card matching two inclusion values therefore appears twice; that
// duplication is part of the contract, not an accident to deduplicate.
func selectStage(working []card.Card, raw []string, value func(string) (int, error), key func(card.Card) int) ([]card.Card, error) {
	var inclusions, exclusions []int
	for _, s := range raw {
		crit, err := parseCriterion(s, value)
		if err != nil {
			return nil, err
		}
		if crit.exclude {
			exclusions = append(exclusions, crit.value)
		} else {
			inclusions = append(inclusions, crit.value)
		}
	}

	for _, v := range exclusions {
		kept := make([]card.Card, 0, len(working))
		for _, c := range working {
			if key(c) != v {
				kept = append(kept, c)
			}
		}
		working = kept
	}

	if len(inclusions) > 0 {
		var rebuilt []card.Card
		for _, v := range inclusions {
			for _, c := range working {
				if key(c) == v {
					rebuilt = append(rebuilt, c)
				}
			}
		}
		working = rebuilt
	}
	return working, nil
}

// Select returns a new deck of the cards matching the filter, leaving the
// receiver untouched. The rank stage runs first, then the suit stage, then
// color and face as plain AND filters over whatever survives.
func (d *Deck) Select(f Filter) (*Deck, error) {
	working := append([]card.Card(nil), d.cards...)

	if len(f.Ranks) > 0 {
		var err error
		working, err = selectStage(working, f.Ranks, rankValue, func(c card.Card) int { return int(c.Rank()) })
		if err != nil {
			return nil, fmt.Errorf("rank criteria: %w", err)
		}
	}

	if len(f.Suits) > 0 {
		var err error
		working, err = selectStage(working, f.Suits, suitValue, func(c card.Card) int { return int(c.Suit()) })
		if err != nil {
			return nil, fmt.Errorf("suit criteria: %w", err)
		}
	}

	if f.Color != "" {
		want, err := card.ParseColor(f.Color)
		if err != nil {
			return nil, err
		}
		kept := make([]card.Card, 0, len(working))
		for _, c := range working {
			if c.Color() == want {
				kept = append(kept, c)
			}
		}
		working = kept
	}

	if f.Face != nil {
		kept := make([]card.Card, 0, len(working))
		for _, c := range working {
			if c.IsFace() == *f.Face {
				kept = append(kept, c)
			}
		}
		working = kept
	}

	return New(working...), nil
}
