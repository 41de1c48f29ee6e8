// Package deck implements an ordered, mutable collection of playing cards
// with positional and value-based mutation, random sampling, sorting, and
// criteria-based selection.
package deck

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/lmeunier/cardstock/internal/card"
)

// Errors reported by deck operations. ErrOutOfRange covers positions
// outside the current deck length; ErrNotFound covers cards that are
// absent; ErrNestedGroup covers collection arguments nested more than one
// level deep; ErrNegativeCount covers negative repetition counts. They are
// distinct so callers can tell "not found" from "out of bounds" with
// errors.Is.
var (
	ErrOutOfRange    = errors.New("index out of range")
	ErrNotFound      = errors.New("card not found in the deck")
	ErrNestedGroup   = errors.New("nested collections are not supported")
	ErrNegativeCount = errors.New("repetitions must be a non-negative integer")
)

// Deck is an ordered sequence of cards. Duplicates are permitted, so the
// same deck can back multi-deck games. Insertion order is the only implicit
// order until an explicit sort.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New builds a deck holding exactly the given cards, order and duplicates
// preserved.
func New(cards ...card.Card) *Deck {
	d := &Deck{
		cards: append(make([]card.Card, 0, len(cards)), cards...),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	return d
}

// Standard builds the 54-card deck: for each suit Clubs through Hearts all
// thirteen ranks Ace through King, followed by the black and the red joker.
func Standard() *Deck {
	d := New()
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			c, _ := card.New(r, s)
			d.cards = append(d.cards, c)
		}
	}
	d.cards = append(d.cards, card.NewJoker(card.Black), card.NewJoker(card.Red))
	return d
}

// SetRand replaces the deck's random source. Tests pass a seeded source to
// make Shuffle and the random draws deterministic.
func (d *Deck) SetRand(r *rand.Rand) { d.rng = r }

// Len returns the number of cards currently in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the deck's sequence.
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Contains reports whether the deck holds at least one card equal to c.
func (d *Deck) Contains(c card.Card) bool {
	for _, have := range d.cards {
		if have.Equal(c) {
			return true
		}
	}
	return false
}

// Equal reports whether both decks hold the same cards in the same order.
func (d *Deck) Equal(o *Deck) bool {
	if o == nil || len(d.cards) != len(o.cards) {
		return false
	}
	for i, c := range d.cards {
		if !c.Equal(o.cards[i]) {
			return false
		}
	}
	return true
}

// Hash returns a digest of the full ordered sequence, consistent with
// Equal: equal decks hash identically.
func (d *Deck) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, c := range d.cards {
		buf[0] = 0
		if c.IsJoker() {
			buf[0] = 1
		}
		buf[1] = byte(c.Rank())
		buf[2] = byte(c.Suit())
		buf[3] = byte(c.Color())
		h.Write(buf)
	}
	return h.Sum64()
}

// Copy returns an independently mutable deck holding copies of every card.
func (d *Deck) Copy() *Deck {
	return New(d.cards...)
}

// Concat returns a new deck holding d's cards followed by o's. Neither
// receiver is modified.
func (d *Deck) Concat(o *Deck) *Deck {
	out := New(d.cards...)
	out.cards = append(out.cards, o.cards...)
	return out
}

// Repeat returns a new deck holding d's sequence n times over. A negative
// n is rejected with ErrNegativeCount.
func (d *Deck) Repeat(n int) (*Deck, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	out := New()
	for i := 0; i < n; i++ {
		out.cards = append(out.cards, d.cards...)
	}
	return out, nil
}

// String renders the deck as D[...] with each card in long form.
func (d *Deck) String() string {
	var b strings.Builder
	b.WriteString("D[")
	for i, c := range d.cards {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]")
	return b.String()
}

// resolve maps a possibly negative position onto [0, len) or fails with
// ErrOutOfRange.
func (d *Deck) resolve(i int) (int, error) {
	r := i
	if r < 0 {
		r += len(d.cards)
	}
	if r < 0 || r >= len(d.cards) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return r, nil
}

// Add appends the given cards, preserving their order.
func (d *Deck) Add(cs ...card.Card) {
	d.cards = append(d.cards, cs...)
}

// AddAt splices the given cards in as a contiguous block starting at index.
// Negative indexes count from the end; the valid range is [-len, len], with
// len (or -0) meaning append. Inserting at -1 places the block immediately
// before the last card.
func (d *Deck) AddAt(index int, cs ...card.Card) error {
	at := index
	if at < 0 {
		at += len(d.cards)
	}
	if at < 0 || at > len(d.cards) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if len(cs) == 0 {
		return nil
	}
	d.cards = append(d.cards[:at], append(append([]card.Card(nil), cs...), d.cards[at:]...)...)
	return nil
}

// SetAt replaces the card at index, which may be negative.
func (d *Deck) SetAt(index int, c card.Card) error {
	at, err := d.resolve(index)
	if err != nil {
		return err
	}
	d.cards[at] = c
	return nil
}

// Get returns the card at index without removing it. Negative indexes count
// from the end.
func (d *Deck) Get(index int) (card.Card, error) {
	at, err := d.resolve(index)
	if err != nil {
		return card.Card{}, err
	}
	return d.cards[at], nil
}

// GetAll returns a new deck holding the cards at the requested positions in
// the requested order. The same position may be requested more than once.
func (d *Deck) GetAll(indexes ...int) (*Deck, error) {
	out := New()
	for _, i := range indexes {
		c, err := d.Get(i)
		if err != nil {
			return nil, err
		}
		out.cards = append(out.cards, c)
	}
	return out, nil
}

// Last returns the final card without removing it.
func (d *Deck) Last() (card.Card, error) {
	return d.Get(-1)
}

// Index returns the position of the first card equal to c, or ErrNotFound.
func (d *Deck) Index(c card.Card) (int, error) {
	for i, have := range d.cards {
		if have.Equal(c) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrNotFound, c)
}

// Indexes returns the first-occurrence position of each given card, in
// argument order. Any absent card fails the whole call.
func (d *Deck) Indexes(cs ...card.Card) ([]int, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		i, err := d.Index(c)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Remove deletes cards referenced by position, by value, or by collections
// of either, mixed freely.
//
// The arguments are flattened one level and partitioned in a single pass:
// positions are resolved to non-negative form, range-checked, and deduped
// (the same resolved position is removed once); card values are checked for
// presence. Any failure surfaces before the deck is touched. Positional
// removals then run in descending order so earlier deletions never shift a
// later target, and value removals follow, one occurrence per repetition in
// the arguments. A card whose only occurrence was consumed by a positional
// removal in the same call is skipped at this stage rather than re-raised;
// presence is guaranteed at call time only.
func (d *Deck) Remove(refs ...Ref) error {
	if len(refs) == 0 {
		return nil
	}
	var indexes []int
	var victims []card.Card
	for _, r := range flatten(refs) {
		switch r.kind {
		case refIndex:
			at, err := d.resolve(r.index)
			if err != nil {
				return err
			}
			seen := false
			for _, have := range indexes {
				if have == at {
					seen = true
					break
				}
			}
			if !seen {
				indexes = append(indexes, at)
			}
		case refCard:
			if !d.Contains(r.card) {
				return fmt.Errorf("%w: %s", ErrNotFound, r.card)
			}
			victims = append(victims, r.card)
		default:
			return ErrNestedGroup
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(indexes)))
	for _, at := range indexes {
		if at < len(d.cards) {
			d.cards = append(d.cards[:at], d.cards[at+1:]...)
		}
	}

	for _, c := range victims {
		if at, err := d.Index(c); err == nil {
			d.cards = append(d.cards[:at], d.cards[at+1:]...)
		}
	}
	return nil
}

// Draw removes and returns the card at index.
func (d *Deck) Draw(index int) (card.Card, error) {
	at, err := d.resolve(index)
	if err != nil {
		return card.Card{}, err
	}
	c := d.cards[at]
	d.cards = append(d.cards[:at], d.cards[at+1:]...)
	return c, nil
}

// DrawAll retrieves the cards at the requested positions and then deletes
// those positions. Requesting a position twice returns the card twice but
// removes it once.
func (d *Deck) DrawAll(indexes ...int) (*Deck, error) {
	out, err := d.GetAll(indexes...)
	if err != nil {
		return nil, err
	}
	refs := make([]Ref, len(indexes))
	for i, idx := range indexes {
		refs[i] = ByIndex(idx)
	}
	if err := d.Remove(refs...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRandom returns amount cards sampled uniformly without replacement,
// leaving the deck untouched. If amount exceeds the deck size every card is
// returned, in sampled order, without error.
func (d *Deck) GetRandom(amount int) *Deck {
	pool := append([]card.Card(nil), d.cards...)
	out := New()
	for amount > 0 && len(pool) > 0 {
		at := d.rng.Intn(len(pool))
		out.cards = append(out.cards, pool[at])
		pool = append(pool[:at], pool[at+1:]...)
		amount--
	}
	return out
}

// DrawRandom removes and returns amount cards, drawing one uniformly random
// position at a time. If amount exceeds the deck size the whole deck is
// drained.
func (d *Deck) DrawRandom(amount int) *Deck {
	out := New()
	for amount > 0 && len(d.cards) > 0 {
		c, _ := d.Draw(d.rng.Intn(len(d.cards)))
		out.cards = append(out.cards, c)
		amount--
	}
	return out
}

// Shuffle randomizes the deck's order in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// SortByRank stably sorts the deck by effective rank, breaking ties by
// suit. The Ace's position follows the rules in force at the moment of the
// call; re-sorting under different rules reorders Aces accordingly.
func (d *Deck) SortByRank(rules card.Rules) {
	sort.SliceStable(d.cards, func(i, j int) bool {
		a, b := d.cards[i], d.cards[j]
		if ar, br := a.EffectiveRank(rules), b.EffectiveRank(rules); ar != br {
			return ar < br
		}
		return a.Suit() < b.Suit()
	})
}

// SortBySuit stably sorts the deck by suit, breaking ties by effective
// rank.
func (d *Deck) SortBySuit(rules card.Rules) {
	sort.SliceStable(d.cards, func(i, j int) bool {
		a, b := d.cards[i], d.cards[j]
		if a.Suit() != b.Suit() {
			return a.Suit() < b.Suit()
		}
		return a.EffectiveRank(rules) < b.EffectiveRank(rules)
	})
}
