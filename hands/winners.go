package hands

import (
	"fmt"
	"sort"

	"github.com/lazharichir/showdown/cards"
)

// Seat is one player's entry into a showdown
type Seat struct {
	PlayerID  string
	HoleCards cards.Stack
	Active    bool // false once the player has folded
}

// Standing is the final position of one active seat in a showdown
type Standing struct {
	PlayerID string
	Layout   Layout
	Place    int // 0 for first place; tied players share a place
	IsWinner bool
}

type seatLayout struct {
	playerID string
	layout   Layout
}

// evaluateSeats computes the layout of every active seat over its hole cards
// and the shared cards, keeping seat order. Player IDs must be unique.
func evaluateSeats(seats []Seat, shared cards.Stack) ([]seatLayout, error) {
	evaluated := make([]seatLayout, 0, len(seats))
	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if seen[seat.PlayerID] {
			return nil, fmt.Errorf("%w: player %s is seated twice", ErrPreconditionViolation, seat.PlayerID)
		}
		seen[seat.PlayerID] = true

		if !seat.Active {
			continue
		}

		layout, err := Evaluate(seat.HoleCards.Concat(shared))
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", seat.PlayerID, err)
		}
		evaluated = append(evaluated, seatLayout{playerID: seat.PlayerID, layout: layout})
	}

	if len(evaluated) == 0 {
		return nil, fmt.Errorf("%w: no active players to resolve", ErrPreconditionViolation)
	}
	return evaluated, nil
}

// ResolveWinners returns the IDs of every active player holding the best
// layout, in seat order. More than one ID means a split.
func ResolveWinners(seats []Seat, shared cards.Stack) ([]string, error) {
	evaluated, err := evaluateSeats(seats, shared)
	if err != nil {
		return nil, err
	}

	best := evaluated[0].layout
	for _, e := range evaluated[1:] {
		if e.layout.Beats(best) {
			best = e.layout
		}
	}

	var winners []string
	for _, e := range evaluated {
		if e.layout.Ties(best) {
			winners = append(winners, e.playerID)
		}
	}
	return winners, nil
}

// Standings ranks every active seat from best to worst hand. Tied players
// share a place and keep seat order; the next weaker hand takes its position
// in the list as its place (1, 1, 3 style).
func Standings(seats []Seat, shared cards.Stack) ([]Standing, error) {
	evaluated, err := evaluateSeats(seats, shared)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].layout.Beats(evaluated[j].layout)
	})

	results := make([]Standing, len(evaluated))
	place := 0
	for i, e := range evaluated {
		if i > 0 && !e.layout.Ties(evaluated[i-1].layout) {
			place = i
		}
		results[i] = Standing{
			PlayerID: e.playerID,
			Layout:   e.layout,
			Place:    place,
			IsWinner: place == 0,
		}
	}

	return results, nil
}
