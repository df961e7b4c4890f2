package cards

import (
	"math/rand"
	"time"
)

// NewDeck52 creates a standard deck of 52 cards, one per (rank, suit) pair
func NewDeck52() Stack {
	deck := make(Stack, 0, NumRanks*NumSuits)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			deck.AddCard(Card{Rank: rank, Suit: suit})
		}
	}

	return deck
}

// NewRand returns a random source seeded from the clock when seed is zero
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ShuffleCards returns a shuffled copy of cards. A nil r uses a clock seed.
func ShuffleCards(cards Stack, r *rand.Rand) Stack {
	if r == nil {
		r = NewRand(0)
	}

	shuffled := cards.Clone()
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
