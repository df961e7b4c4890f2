package hands

import (
	"fmt"

	"github.com/lazharichir/showdown/cards"
)

// Layout is the best hand found in a set of cards: its category and the
// cards that make it up, ordered by significance (defining groups first by
// descending rank, kickers last). Layouts are built by Evaluate only.
type Layout struct {
	combination Combination
	cards       cards.Stack
}

// Combination returns the category of the layout
func (l Layout) Combination() Combination {
	return l.combination
}

// Cards returns a copy of the ordered hand
func (l Layout) Cards() cards.Stack {
	return l.cards.Clone()
}

// Len returns the number of cards in the hand. It is 5 unless the layout was
// built from fewer cards.
func (l Layout) Len() int {
	return len(l.cards)
}

// String returns e.g. "One pair: 5♥ 5♦ A♦ Q♥ J♠"
func (l Layout) String() string {
	return fmt.Sprintf("%s: %s", l.combination, l.cards)
}

// detector finds the best hand of one category
type detector struct {
	combination Combination
	find        func(cards.Stack) (cards.Stack, bool)
}

// detectors are ordered from strongest to weakest category. A set of cards
// can hold several patterns at once and only the strongest is reported.
var detectors = []detector{
	{StraightFlush, FindStraightFlush},
	{Quads, FindQuads},
	{FullHouse, FindFullHouse},
	{Flush, FindFlush},
	{Straight, FindStraight},
	{Set, FindSet},
	{TwoPairs, FindTwoPairs},
	{OnePair, FindOnePair},
}

// Evaluate returns the best layout that can be made from the cards. Any
// number of cards is accepted, duplicates included; with fewer than five
// cards the layout may hold fewer than five cards. The input is not modified.
func Evaluate(stack cards.Stack) (Layout, error) {
	if len(stack) == 0 {
		return Layout{}, fmt.Errorf("%w: no cards to evaluate", ErrInvalidInput)
	}
	for i, c := range stack {
		if !c.Valid() {
			return Layout{}, fmt.Errorf("%w: card %d has rank %d and suit %d", ErrInvalidInput, i+1, c.Rank, c.Suit)
		}
	}

	for _, d := range detectors {
		if hand, ok := d.find(stack); ok {
			return Layout{combination: d.combination, cards: hand}, nil
		}
	}

	return Layout{combination: HighCard, cards: topCards(stack)}, nil
}

// MustEvaluate is like Evaluate but panics on error. Meant for fixtures.
func MustEvaluate(stack cards.Stack) Layout {
	layout, err := Evaluate(stack)
	if err != nil {
		panic(err)
	}
	return layout
}
