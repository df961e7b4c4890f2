package hands

import (
	"sort"

	"github.com/lazharichir/showdown/cards"
)

// handSize is the number of cards in a complete poker hand
const handSize = 5

// The Find* detectors each try to extract the best 5-card hand of one
// category from an arbitrary set of valid cards. They return (nil, false)
// when the pattern is absent and never modify the input. Cards of the same
// rank keep their input order; every other choice is made by rank.

// rankGroups holds the cards of each rank, indexed by rank ordinal
type rankGroups [cards.NumRanks]cards.Stack

// groupByRank buckets the cards by rank, keeping input order in each bucket
func groupByRank(stack cards.Stack) rankGroups {
	var groups rankGroups
	for _, c := range stack {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

// groupBySuit buckets the cards by suit, keeping input order in each bucket
func groupBySuit(stack cards.Stack) [cards.NumSuits]cards.Stack {
	var groups [cards.NumSuits]cards.Stack
	for _, c := range stack {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// ranksWithAtLeast returns, highest first, every rank holding at least n cards
func (g *rankGroups) ranksWithAtLeast(n int) []cards.Rank {
	var ranks []cards.Rank
	for r := cards.Ace; r >= cards.Two; r-- {
		if len(g[r]) >= n {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// sortByRank returns a copy of the stack ordered by descending rank
func sortByRank(stack cards.Stack) cards.Stack {
	result := stack.Clone()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rank > result[j].Rank
	})
	return result
}

// kickers returns the n highest cards whose rank is not in used
func kickers(stack cards.Stack, n int, used ...cards.Rank) cards.Stack {
	out := make(cards.Stack, 0, n)
	for _, c := range sortByRank(stack) {
		if len(out) == n {
			break
		}
		if containsRank(used, c.Rank) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsRank(ranks []cards.Rank, r cards.Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}

// topCards returns the highest cards, at most a full hand
func topCards(stack cards.Stack) cards.Stack {
	sorted := sortByRank(stack)
	if len(sorted) > handSize {
		sorted = sorted[:handSize]
	}
	return sorted
}

// FindStraightFlush looks for five consecutive ranks within one suit,
// including the wheel. The straight with the highest top card wins.
func FindStraightFlush(stack cards.Stack) (cards.Stack, bool) {
	var best cards.Stack
	for _, suited := range groupBySuit(stack) {
		if len(suited) < handSize {
			continue
		}
		straight, ok := FindStraight(suited)
		if !ok {
			continue
		}
		if best == nil || straight[0].Rank > best[0].Rank {
			best = straight
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// FindQuads looks for four cards of the same rank plus the best kicker
func FindQuads(stack cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(stack)
	quads := groups.ranksWithAtLeast(4)
	if len(quads) == 0 {
		return nil, false
	}

	rank := quads[0]
	result := make(cards.Stack, 0, handSize)
	result = append(result, groups[rank][:4]...)
	result = append(result, kickers(stack, 1, rank)...)
	return result, true
}

// FindFullHouse looks for a triplet and a pair. The pair may be taken from a
// weaker triplet.
func FindFullHouse(stack cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(stack)
	triplets := groups.ranksWithAtLeast(3)
	if len(triplets) == 0 {
		return nil, false
	}
	three := triplets[0]

	for _, two := range groups.ranksWithAtLeast(2) {
		if two == three {
			continue
		}
		result := make(cards.Stack, 0, handSize)
		result = append(result, groups[three][:3]...)
		result = append(result, groups[two][:2]...)
		return result, true
	}

	return nil, false
}

// FindFlush looks for five cards of the same suit, keeping the highest five.
// If several suits qualify the strongest five cards win.
func FindFlush(stack cards.Stack) (cards.Stack, bool) {
	var best cards.Stack
	for _, suited := range groupBySuit(stack) {
		if len(suited) < handSize {
			continue
		}
		top := topCards(suited)
		if best == nil || compareRanks(top, best) > 0 {
			best = top
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// FindStraight looks for five consecutive ranks, with the ace also playing
// low in A-2-3-4-5. The highest straight wins and is ordered from its top
// card down, so the wheel reads 5-4-3-2-A.
func FindStraight(stack cards.Stack) (cards.Stack, bool) {
	var present [cards.NumRanks]bool
	var first [cards.NumRanks]cards.Card
	for _, c := range stack {
		if !present[c.Rank] {
			present[c.Rank] = true
			first[c.Rank] = c
		}
	}

	for top := cards.Ace; top >= cards.Six; top-- {
		run := true
		for r := top; r > top-handSize; r-- {
			if !present[r] {
				run = false
				break
			}
		}
		if !run {
			continue
		}

		result := make(cards.Stack, 0, handSize)
		for r := top; r > top-handSize; r-- {
			result = append(result, first[r])
		}
		return result, true
	}

	if present[cards.Ace] && present[cards.Five] && present[cards.Four] && present[cards.Three] && present[cards.Two] {
		return cards.Stack{
			first[cards.Five],
			first[cards.Four],
			first[cards.Three],
			first[cards.Two],
			first[cards.Ace],
		}, true
	}

	return nil, false
}

// FindSet looks for a single three of a kind plus the two best kickers
func FindSet(stack cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(stack)
	triplets := groups.ranksWithAtLeast(3)
	if len(triplets) != 1 {
		return nil, false
	}

	rank := triplets[0]
	result := make(cards.Stack, 0, handSize)
	result = append(result, groups[rank][:3]...)
	result = append(result, kickers(stack, 2, rank)...)
	return result, true
}

// FindTwoPairs looks for the two highest pairs plus the best kicker, which
// may come from a third pair.
func FindTwoPairs(stack cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(stack)
	pairs := groups.ranksWithAtLeast(2)
	if len(pairs) < 2 {
		return nil, false
	}

	high, low := pairs[0], pairs[1]
	result := make(cards.Stack, 0, handSize)
	result = append(result, groups[high][:2]...)
	result = append(result, groups[low][:2]...)
	result = append(result, kickers(stack, 1, high, low)...)
	return result, true
}

// FindOnePair looks for a single pair plus the three best kickers
func FindOnePair(stack cards.Stack) (cards.Stack, bool) {
	groups := groupByRank(stack)
	pairs := groups.ranksWithAtLeast(2)
	if len(pairs) != 1 {
		return nil, false
	}

	rank := pairs[0]
	result := make(cards.Stack, 0, handSize)
	result = append(result, groups[rank][:2]...)
	result = append(result, kickers(stack, 3, rank)...)
	return result, true
}
