// Package card models French-suited playing cards and jokers as immutable
// values, with equality, rank-based ordering, and string/glyph rendering.
package card

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors reported by constructors and parsers. Callers can test for them
// with errors.Is to tell one rejected input apart from another.
var (
	ErrUnknownRank  = errors.New("invalid rank value")
	ErrUnknownSuit  = errors.New("invalid suit value")
	ErrUnknownColor = errors.New("invalid color value")
)

// Suit identifies one of the four French suits. Jokers report the zero
// value through Card.Suit.
type Suit int

const (
	Clubs Suit = iota + 1
	Spades
	Diamonds
	Hearts
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// ParseSuit accepts a suit name or its numeral ("Clubs" or "1").
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "Clubs":
		return Clubs, nil
	case "Spades":
		return Spades, nil
	case "Diamonds":
		return Diamonds, nil
	case "Hearts":
		return Hearts, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Clubs <= Suit(n) && Suit(n) <= Hearts {
		return Suit(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// Suits returns all four suits in their canonical order.
func Suits() []Suit {
	return []Suit{Clubs, Spades, Diamonds, Hearts}
}

// Rank identifies a card rank, Ace through King. Jokers report the zero
// value through Card.Rank.
type Rank int

const (
	Ace Rank = iota + 1
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

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	if Two <= r && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// ParseRank accepts a rank name or its numeral ("Queen" or "12").
func ParseRank(s string) (Rank, error) {
	switch s {
	case "Ace":
		return Ace, nil
	case "Jack":
		return Jack, nil
	case "Queen":
		return Queen, nil
	case "King":
		return King, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Ace <= Rank(n) && Rank(n) <= King {
		return Rank(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

// Ranks returns all thirteen ranks, Ace first.
func Ranks() []Rank {
	rs := make([]Rank, 0, int(King))
	for r := Ace; r <= King; r++ {
		rs = append(rs, r)
	}
	return rs
}

// Color is a card color. For standard cards it is derived from the suit;
// for jokers it is the only identity axis besides being a joker.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// ParseColor accepts "Black" or "Red".
func ParseColor(s string) (Color, error) {
	switch s {
	case "Black":
		return Black, nil
	case "Red":
		return Red, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Rules configures ordering. The zero value treats the Ace as the highest
// card (worth 14); AceLow makes it worth its face value of 1. Rules are
// passed explicitly to every comparison, so two calls can disagree without
// any process-wide state.
type Rules struct {
	AceLow bool
}

// AceValue reports the effective rank assigned to Aces under r.
func (r Rules) AceValue() int {
	if r.AceLow {
		return 1
	}
	return 14
}

// Card is a single playing card or joker. The zero value is not a valid
// card; use New, Parse, or NewJoker.
//
// A joker is a closed variant of the same type rather than a subtype: it is
// tagged internally, reports sentinel rank 0 and suit 0, is always a face
// card, and carries its color explicitly.
type Card struct {
	joker bool
	rank  Rank
	suit  Suit
	red   bool
}

// New builds a standard card, rejecting out-of-range ranks and suits.
func New(rank Rank, suit Suit) (Card, error) {
	if rank < Ace || rank > King {
		return Card{}, fmt.Errorf("%w: %d", ErrUnknownRank, int(rank))
	}
	if suit < Clubs || suit > Hearts {
		return Card{}, fmt.Errorf("%w: %d", ErrUnknownSuit, int(suit))
	}
	return Card{rank: rank, suit: suit, red: suit > Spades}, nil
}

// Parse builds a standard card from string forms, accepting names and
// numerals for both rank and suit.
func Parse(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return New(r, s)
}

// NewJoker builds a joker of the given color.
func NewJoker(color Color) Card {
	return Card{joker: true, red: color == Red}
}

// ParseJoker builds a joker from a color name ("Black" or "Red").
func ParseJoker(color string) (Card, error) {
	c, err := ParseColor(color)
	if err != nil {
		return Card{}, err
	}
	return NewJoker(c), nil
}

// IsJoker reports whether c is a joker.
func (c Card) IsJoker() bool { return c.joker }

// Rank returns the rank, or 0 for jokers.
func (c Card) Rank() Rank {
	if c.joker {
		return 0
	}
	return c.rank
}

// Suit returns the suit, or 0 for jokers.
func (c Card) Suit() Suit {
	if c.joker {
		return 0
	}
	return c.suit
}

// Color returns Black or Red. For standard cards this follows the suit
// (Diamonds and Hearts are red); for jokers it is the constructed color.
func (c Card) Color() Color {
	if c.red {
		return Red
	}
	return Black
}

// IsFace reports whether c is a face card (Jack, Queen, King). Jokers are
// always face cards.
func (c Card) IsFace() bool {
	return c.joker || c.rank > Ten
}

// SameRank reports whether both cards share a rank. All jokers share the
// sentinel rank.
func (c Card) SameRank(o Card) bool { return c.Rank() == o.Rank() }

// SameSuit reports whether both cards share a suit. All jokers share the
// sentinel suit.
func (c Card) SameSuit(o Card) bool { return c.Suit() == o.Suit() }

// SameColor reports whether both cards share a color.
func (c Card) SameColor(o Card) bool { return c.red == o.red }

// Equal reports full identity: rank, suit, color, and face flag all match.
// Two jokers are equal exactly when they share a color.
func (c Card) Equal(o Card) bool { return c == o }

// EffectiveRank is the value used for ordering: the raw rank, except Aces,
// which resolve per rules, and jokers, which stay at 0.
func (c Card) EffectiveRank(rules Rules) int {
	if !c.joker && c.rank == Ace {
		return rules.AceValue()
	}
	return int(c.Rank())
}

// Compare orders two cards by effective rank only, ignoring suit. It
// returns -1, 0, or 1. Cards of equal effective rank compare as neither
// smaller nor greater even when they are not Equal.
func (c Card) Compare(o Card, rules Rules) int {
	a, b := c.EffectiveRank(rules), o.EffectiveRank(rules)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether c orders before o under rules.
func (c Card) Less(o Card, rules Rules) bool { return c.Compare(o, rules) < 0 }
