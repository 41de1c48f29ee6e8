package deck

import "github.com/lmeunier/cardstock/internal/card"

type refKind int

const (
	refIndex refKind = iota
	refCard
	refGroup
)

// Ref is a single removal argument: a position, a card value, or a
// collection of further refs. It replaces the heterogeneous argument
// bundles of dynamically typed card libraries with a closed tagged union,
// so Remove can mix positions and values freely in one call.
type Ref struct {
	kind  refKind
	index int
	card  card.Card
	refs  []Ref
}

// ByIndex references the card at position i. Negative positions count from
// the end.
func ByIndex(i int) Ref { return Ref{kind: refIndex, index: i} }

// ByCard references the first card equal to c.
func ByCard(c card.Card) Ref { return Ref{kind: refCard, card: c} }

// Group bundles refs into one collection argument. Groups flatten exactly
// one level: a Group nested inside another Group is rejected by the
// consuming operation, not recursed into.
func Group(refs ...Ref) Ref { return Ref{kind: refGroup, refs: refs} }

// ByCards bundles card values into one collection argument.
func ByCards(cs ...card.Card) Ref {
	refs := make([]Ref, len(cs))
	for i, c := range cs {
		refs[i] = ByCard(c)
	}
	return Group(refs...)
}

// FromDeck references every card of d, in order, as one collection
// argument. The cards are captured at call time.
func FromDeck(d *Deck) Ref {
	return ByCards(d.cards...)
}

// flatten splices each top-level Group's elements in place, preserving
// order within and across arguments. It expands one level only and does no
// validation: an element that is itself a Group survives into the result
// for the caller to reject.
func flatten(refs []Ref) []Ref {
	flat := make([]Ref, 0, len(refs))
	for _, r := range refs {
		if r.kind == refGroup {
			flat = append(flat, r.refs...)
			continue
		}
		flat = append(flat, r)
	}
	return flat
}
