package hands

import "github.com/lazharichir/showdown/cards"

// Compare orders two layouts and returns:
// -1 if a is worse than b
// 0 if they tie
// 1 if a is better than b
//
// The combination decides first. Within a combination the hands are
// compared card by card in their stored order and the first differing rank
// wins; the cards are never re-sorted.
func Compare(a, b Layout) int {
	if a.combination < b.combination {
		return -1
	}
	if a.combination > b.combination {
		return 1
	}
	return compareRanks(a.cards, b.cards)
}

// Beats reports whether l is strictly better than other
func (l Layout) Beats(other Layout) bool {
	return Compare(l, other) > 0
}

// Ties reports whether l and other are of equal strength
func (l Layout) Ties(other Layout) bool {
	return Compare(l, other) == 0
}

// compareRanks compares two hands position by position. When every shared
// position matches, the longer hand is greater.
func compareRanks(a, b cards.Stack) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}
	return compareInt(len(a), len(b))
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
