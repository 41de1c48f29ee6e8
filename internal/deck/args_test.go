package deck

import (
	"errors"
	"testing"

	"github.com/lmeunier/cardstock/internal/card"
)

func TestFlattenSplicesOneLevel(t *testing.T) {
	a, _ := card.New(card.Ace, card.Spades)
	b, _ := card.New(card.Two, card.Spades)

	flat := flatten([]Ref{ByIndex(3), Group(ByCard(a), ByIndex(1)), ByCard(b)})
	if len(flat) != 4 {
		t.Fatalf("expected 4 refs, got %d", len(flat))
	}
	if flat[0].kind != refIndex || flat[0].index != 3 {
		t.Fatalf("ref 0 not spliced in place")
	}
	if flat[1].kind != refCard || !flat[1].card.Equal(a) {
		t.Fatalf("group elements must keep their relative order")
	}
	if flat[2].kind != refIndex || flat[2].index != 1 {
		t.Fatalf("group elements must keep their relative order")
	}
	if flat[3].kind != refCard || !flat[3].card.Equal(b) {
		t.Fatalf("trailing argument lost")
	}
}

func TestFlattenDoesNotRecurse(t *testing.T) {
	inner := Group(ByIndex(0))
	flat := flatten([]Ref{Group(inner)})
	if len(flat) != 1 || flat[0].kind != refGroup {
		t.Fatalf("nested groups must survive flattening for the consumer to reject")
	}
}

func TestRemoveRejectsNestedGroups(t *testing.T) {
	d := Standard()
	err := d.Remove(Group(Group(ByIndex(0))))
	if !errors.Is(err, ErrNestedGroup) {
		t.Fatalf("expected ErrNestedGroup, got %v", err)
	}
	if d.Len() != 54 {
		t.Fatalf("rejected call must not mutate, len=%d", d.Len())
	}
}

func TestByCardsAndFromDeck(t *testing.T) {
	a, _ := card.New(card.Ace, card.Spades)
	b, _ := card.New(card.Two, card.Spades)

	g := ByCards(a, b)
	flat := flatten([]Ref{g})
	if len(flat) != 2 || !flat[0].card.Equal(a) || !flat[1].card.Equal(b) {
		t.Fatalf("ByCards must expand to its cards in order")
	}

	src := New(a, b)
	flat = flatten([]Ref{FromDeck(src)})
	if len(flat) != 2 || !flat[0].card.Equal(a) || !flat[1].card.Equal(b) {
		t.Fatalf("FromDeck must expand to the deck's cards in order")
	}
}
