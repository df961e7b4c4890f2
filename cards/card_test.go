package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Rank: Ace, Suit: Spades}, false},
		{"Ace of Spades lowercase", "As", Card{Rank: Ace, Suit: Spades}, false},
		{"Ace of Spades uppercase", "AS", Card{Rank: Ace, Suit: Spades}, false},
		{"Ten of Hearts letter", "TH", Card{Rank: Ten, Suit: Hearts}, false},
		{"Ten of Hearts digits", "10h", Card{Rank: Ten, Suit: Hearts}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Rank: Ten, Suit: Hearts}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Rank: Queen, Suit: Diamonds}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Rank: Queen, Suit: Diamonds}, false},
		{"Two of Clubs uppercase", "2C", Card{Rank: Two, Suit: Clubs}, false},
		{"Two of Clubs Unicode", "2♣", Card{Rank: Two, Suit: Clubs}, false},

		// All ranks for a single suit
		{"King of Hearts", "Kh", Card{Rank: King, Suit: Hearts}, false},
		{"Jack of Hearts", "Jh", Card{Rank: Jack, Suit: Hearts}, false},
		{"Nine of Hearts", "9h", Card{Rank: Nine, Suit: Hearts}, false},
		{"Eight of Hearts", "8h", Card{Rank: Eight, Suit: Hearts}, false},
		{"Seven of Hearts", "7h", Card{Rank: Seven, Suit: Hearts}, false},
		{"Six of Hearts", "6h", Card{Rank: Six, Suit: Hearts}, false},
		{"Five of Hearts", "5h", Card{Rank: Five, Suit: Hearts}, false},
		{"Four of Hearts", "4h", Card{Rank: Four, Suit: Hearts}, false},
		{"Three of Hearts", "3h", Card{Rank: Three, Suit: Hearts}, false},

		{"Input with mixed case", "aS", Card{Rank: Ace, Suit: Spades}, false},
		{"Lowercase ten", "tc", Card{Rank: Ten, Suit: Clubs}, false},

		// Invalid inputs
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "TX", Card{}, true},
		{"Invalid rank", "11S", Card{}, true},
		{"Invalid format", "XX", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Special characters", "A$", Card{}, true},
		{"Number too large", "100S", Card{}, true},
		{"Rank one", "1S", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err, "Parse(%q) should return an error", tt.input)
				require.ErrorIs(t, err, ErrInvalidCard)
			} else {
				require.NoError(t, err, "Parse(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "Parse(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("ZZ") })
	assert.NotPanics(t, func() { MustParse("KD") })
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "T♥", Card{Rank: Ten, Suit: Hearts}.String())
	assert.Equal(t, "2♣", Card{Rank: Two, Suit: Clubs}.String())
	assert.Equal(t, "QD", Card{Rank: Queen, Suit: Diamonds}.Notation())
}

func TestCard_NotationRoundTrip(t *testing.T) {
	for _, card := range NewDeck52() {
		parsed, err := Parse(card.Notation())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)
	}
}

func TestCard_Equals(t *testing.T) {
	a := New(Ace, Spades)

	assert.True(t, a.Equals(Card{Rank: Ace, Suit: Spades}))
	assert.False(t, a.Equals(New(Ace, Hearts)))
	assert.False(t, a.Equals(New(King, Spades)))

	// cards are comparable values and can key a map
	seen := map[Card]int{}
	seen[a]++
	seen[New(Ace, Spades)]++
	assert.Equal(t, 2, seen[a])
}

func TestCard_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want int
	}{
		{"higher rank", New(Ace, Clubs), New(King, Spades), 1},
		{"lower rank", New(Two, Spades), New(Three, Clubs), -1},
		{"same rank different suit", New(Ten, Hearts), New(Ten, Diamonds), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestRank_Order(t *testing.T) {
	assert.Less(t, int(Two), int(Three))
	assert.Less(t, int(King), int(Ace))
	assert.Equal(t, NumRanks, int(Ace)+1)
	assert.Equal(t, "?", Rank(42).String())
	assert.Equal(t, "?", Suit(9).String())
}
