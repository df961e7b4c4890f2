package cards

import "math/rand"

// Shoe represents multiple decks of cards. Dealing from a shoe can hand out
// the same card more than once.
type Shoe struct {
	Cards Stack
}

// NewShoe creates a new shoe with a given number of decks
func NewShoe(numDecks int) Shoe {
	var cards Stack
	for i := 0; i < numDecks; i++ {
		cards = append(cards, NewDeck52()...)
	}
	return Shoe{Cards: cards}
}

// Shuffle shuffles the shoe in place using r
func (s *Shoe) Shuffle(r *rand.Rand) {
	s.Cards = ShuffleCards(s.Cards, r)
}

// Deal removes and returns up to count cards from the shoe
func (s *Shoe) Deal(count int) Stack {
	return s.Cards.DealCards(count)
}
