package card

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Spades:   "♠",
	Diamonds: "♦",
	Hearts:   "♥",
}

var shortRanks = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5",
	Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "10",
	Jack: "J", Queen: "Q", King: "K",
}

// Unicode playing-card glyphs, indexed by suit then rank. The knight
// codepoints are skipped, which is why the queen and king are not
// contiguous with the jack.
var cardGlyphs = map[Suit]map[Rank]string{
	Clubs: {
		Ace: "🃑", Two: "🃒", Three: "🃓", Four: "🃔", Five: "🃕",
		Six: "🃖", Seven: "🃗", Eight: "🃘", Nine: "🃙", Ten: "🃚",
		Jack: "🃛", Queen: "🃝", King: "🃞",
	},
	Spades: {
		Ace: "🂡", Two: "🂢", Three: "🂣", Four: "🂤", Five: "🂥",
		Six: "🂦", Seven: "🂧", Eight: "🂨", Nine: "🂩", Ten: "🂪",
		Jack: "🂫", Queen: "🂭", King: "🂮",
	},
	Diamonds: {
		Ace: "🃁", Two: "🃂", Three: "🃃", Four: "🃄", Five: "🃅",
		Six: "🃆", Seven: "🃇", Eight: "🃈", Nine: "🃉", Ten: "🃊",
		Jack: "🃋", Queen: "🃍", King: "🃎",
	},
	Hearts: {
		Ace: "🂱", Two: "🂲", Three: "🂳", Four: "🂴", Five: "🂵",
		Six: "🂶", Seven: "🂷", Eight: "🂸", Nine: "🂹", Ten: "🂺",
		Jack: "🂻", Queen: "🂽", King: "🂾",
	},
}

// String is the long form: "Ace of Spades", "Red Joker".
func (c Card) String() string {
	if c.joker {
		return c.Color().String() + " Joker"
	}
	return c.rank.String() + " of " + c.suit.String()
}

// Short is the abbreviated form: "A♠", "10♥". Jokers render as "BJ" or
// "RJ".
func (c Card) Short() string {
	if c.joker {
		if c.red {
			return "RJ"
		}
		return "BJ"
	}
	return shortRanks[c.rank] + suitSymbols[c.suit]
}

// Format renders the long or the short form. It exists so callers can feed
// a display toggle straight through instead of branching themselves.
func (c Card) Format(short bool) string {
	if short {
		return c.Short()
	}
	return c.String()
}

// Glyph is the single Unicode playing-card character for c, "🃏" for the
// black joker and "🂿" for the red one.
func (c Card) Glyph() string {
	if c.joker {
		if c.red {
			return "🂿"
		}
		return "🃏"
	}
	return cardGlyphs[c.suit][c.rank]
}

// SuitSymbol is the single-character suit mark ("♠"). Jokers have none and
// yield the color initial instead ("B" or "R").
func (c Card) SuitSymbol() string {
	if c.joker {
		if c.red {
			return "R"
		}
		return "B"
	}
	return suitSymbols[c.suit]
}
