package hands

import (
	"testing"

	"github.com/lazharichir/showdown/cards"
	"github.com/stretchr/testify/assert"
)

func TestDetectors(t *testing.T) {
	type finder func(cards.Stack) (cards.Stack, bool)

	tests := []struct {
		name   string
		find   finder
		input  string
		want   string
		wantOK bool
	}{
		{"straight flush absent", FindStraightFlush, "2C 3C 4C 5C 7C 6D", "", false},
		{"straight flush needs one suit", FindStraightFlush, "2C 3C 4C 5C 6D 7D", "", false},
		{"straight flush picks the higher suit run", FindStraightFlush, "2C 3C 4C 5C 6C 8D 9D TD JD QD", "QD JD TD 9D 8D", true},
		{"straight flush wheel", FindStraightFlush, "AD 2D 3D 4D 5D", "5D 4D 3D 2D AD", true},

		{"quads absent", FindQuads, "2C 2D 2S 3H", "", false},
		{"quads keeps the higher group", FindQuads, "2C 2D 2S 2H 5C 5D 5S 5H", "5C 5D 5S 5H 2C", true},

		{"full house absent", FindFullHouse, "2C 2D 2S 3H 4H", "", false},
		{"full house needs a triplet", FindFullHouse, "2C 2D 3S 3H 4H 4D", "", false},
		{"full house ties broken by rank not order", FindFullHouse, "4D 4H 4S QH QS QC", "QH QS QC 4D 4H", true},

		{"flush absent", FindFlush, "2C 3C 4C 5C 7D", "", false},
		{"flush keeps top five", FindFlush, "2H 9H 3H KH 4H 5H", "KH 9H 5H 4H 3H", true},
		{"flush picks the stronger suit", FindFlush, "2H 9H 3H KH 4H AD 3D 4D 5D 6D", "AD 6D 5D 4D 3D", true},
		{"flush compares past the top card", FindFlush, "AH 9H 3H KH 4H AD 3D 4D 5D KD", "AH KH 9H 4H 3H", true},

		{"straight absent", FindStraight, "2C 3D 4H 5S 7C", "", false},
		{"straight does not wrap around", FindStraight, "QC KD AH 2S 3C", "", false},
		{"straight wheel with higher cards", FindStraight, "AC 2D 3H 4S 5C KD", "5C 4S 3H 2D AC", true},

		{"set absent", FindSet, "2C 2D 3H 4S", "", false},
		{"set", FindSet, "9C 2D 9H 9S KC", "9C 9H 9S KC 2D", true},
		{"set rejects two triplets", FindSet, "9C 9D 9H 2S 2C 2D", "", false},

		{"two pairs absent", FindTwoPairs, "2C 2D 3H 4S", "", false},
		{"two pairs from a triplet and a pair", FindTwoPairs, "9C 9D 9H 2S 2C KD", "9C 9D 2S 2C KD", true},

		{"one pair absent", FindOnePair, "2C 3D 4H 5S", "", false},
		{"one pair rejects two pairs", FindOnePair, "2C 2D 3H 3S", "", false},
		{"one pair", FindOnePair, "KC 2D KH 7S 8C 3D", "KC KH 8C 7S 3D", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := cards.MustParseStack(tt.input)
			original := input.Clone()

			got, ok := tt.find(input)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, cards.MustParseStack(tt.want), got)
			} else {
				assert.Nil(t, got, "a failed detector must not return cards")
			}
			assert.Equal(t, original, input, "input must not be modified")
		})
	}
}

func TestSortByRank_Stable(t *testing.T) {
	input := cards.MustParseStack("5H 4S 5D AD 4C")

	assert.Equal(t, cards.MustParseStack("AD 5H 5D 4S 4C"), sortByRank(input))
	assert.Equal(t, cards.MustParseStack("5H 4S 5D AD 4C"), input)
}

func TestKickers(t *testing.T) {
	input := cards.MustParseStack("5H 4S 5D AD JS QH 6D")

	assert.Equal(t, cards.MustParseStack("AD QH JS"), kickers(input, 3, cards.Five))
	assert.Equal(t, cards.MustParseStack("AD"), kickers(input, 1))
	assert.Empty(t, kickers(cards.MustParseStack("5H 5D"), 3, cards.Five))
}
