package hands

import "fmt"

// Combination represents the category of a poker hand, from weakest to strongest
type Combination int

const (
	HighCard Combination = iota
	OnePair
	TwoPairs
	Set // three of a kind
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// NumCombinations is the number of hand categories
const NumCombinations = 9

// Combinations lists every category from strongest to weakest, which is the
// order the selector tries them in.
var Combinations = [NumCombinations]Combination{
	StraightFlush,
	Quads,
	FullHouse,
	Flush,
	Straight,
	Set,
	TwoPairs,
	OnePair,
	HighCard,
}

// String returns the human readable name of a combination
func (c Combination) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "One pair"
	case TwoPairs:
		return "Two pairs"
	case Set:
		return "Set"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case Quads:
		return "Quads"
	case StraightFlush:
		return "Straight flush"
	default:
		return fmt.Sprintf("Combination(%d)", int(c))
	}
}
