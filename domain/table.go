package domain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
)

var (
	ErrNotEnoughCards       = errors.New("not enough cards in the deck")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerAlreadyAtTable = errors.New("player already at table")
	ErrTableNotWaiting      = errors.New("table is not waiting for a new hand")
	ErrInvalidCount         = errors.New("card count must be positive")
	ErrBoardFull            = errors.New("board is full")
	ErrTableNotPlaying      = errors.New("can only deal the board while a hand is playing")
)

// HoleCardsPerPlayer is the number of private cards dealt to each player
const HoleCardsPerPlayer = 2

// MaxCommunityCards is the number of shared cards on a full board
const MaxCommunityCards = 5

type TableStatus string

const (
	TableStatusWaiting TableStatus = "waiting"
	TableStatusPlaying TableStatus = "playing"
	TableStatusEnded   TableStatus = "ended"
)

// Table deals cards to seated players and settles the showdown. It is not
// safe for concurrent use.
type Table struct {
	ID             string
	Status         TableStatus
	Players        []*Player
	Deck           cards.Stack
	CommunityCards cards.Stack

	rng *rand.Rand
}

// NewTable creates a table with a freshly shuffled deck. A nil rng shuffles
// with a clock seed.
func NewTable(rng *rand.Rand) *Table {
	if rng == nil {
		rng = cards.NewRand(0)
	}

	t := &Table{
		ID:      uuid.NewString(),
		Status:  TableStatusWaiting,
		Players: []*Player{},
		rng:     rng,
	}
	t.RecreateDeck()
	return t
}

// RecreateDeck replaces the deck with a new shuffled 52-card deck
func (t *Table) RecreateDeck() {
	t.Deck = cards.ShuffleCards(cards.NewDeck52(), t.rng)
}

// Seat adds a player to the table
func (t *Table) Seat(player *Player) error {
	if t.Status != TableStatusWaiting {
		return ErrTableNotWaiting
	}

	for _, p := range t.Players {
		if p.ID == player.ID {
			return ErrPlayerAlreadyAtTable
		}
	}

	t.Players = append(t.Players, player)
	return nil
}

// Player returns the seated player with the given ID
func (t *Table) Player(playerID string) (*Player, error) {
	for _, p := range t.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
}

// DealHoleCards deals two cards to every seated player, one at a time. It
// starts a hand, so the table must be waiting.
func (t *Table) DealHoleCards() error {
	if t.Status != TableStatusWaiting {
		return fmt.Errorf("%w: table is %s", ErrTableNotWaiting, t.Status)
	}
	if len(t.Deck) < len(t.Players)*HoleCardsPerPlayer {
		return fmt.Errorf("%w: need %d for hole cards, have %d",
			ErrNotEnoughCards, len(t.Players)*HoleCardsPerPlayer, len(t.Deck))
	}

	for round := 0; round < HoleCardsPerPlayer; round++ {
		for _, p := range t.Players {
			card, _ := t.Deck.DealCard()
			p.HoleCards.AddCard(card)
		}
	}

	t.Status = TableStatusPlaying
	return nil
}

// DealCommunity burns a card and then puts count cards on the board
func (t *Table) DealCommunity(count int) error {
	if t.Status != TableStatusPlaying {
		return fmt.Errorf("%w: table is %s", ErrTableNotPlaying, t.Status)
	}
	if count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if len(t.CommunityCards)+count > MaxCommunityCards {
		return fmt.Errorf("%w: holds %d cards, cannot add %d", ErrBoardFull, len(t.CommunityCards), count)
	}
	if len(t.Deck) < count+1 {
		return fmt.Errorf("%w: need %d for the board, have %d", ErrNotEnoughCards, count+1, len(t.Deck))
	}

	t.Deck.BurnCard()
	t.CommunityCards.AddCards(t.Deck.DealCards(count)...)
	return nil
}

// Fold takes a player out of the current hand
func (t *Table) Fold(playerID string) error {
	p, err := t.Player(playerID)
	if err != nil {
		return err
	}
	p.Fold()
	return nil
}

// ActivePlayers returns the players that have not folded
func (t *Table) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range t.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Layout returns the best hand a player can make with the current board
func (t *Table) Layout(playerID string) (hands.Layout, error) {
	p, err := t.Player(playerID)
	if err != nil {
		return hands.Layout{}, err
	}
	return hands.Evaluate(p.HoleCards.Concat(t.CommunityCards))
}

// Seats converts the players to showdown seats. The hole cards are copied so
// the seats outlive the hand.
func (t *Table) Seats() []hands.Seat {
	seats := make([]hands.Seat, len(t.Players))
	for i, p := range t.Players {
		seats[i] = hands.Seat{
			PlayerID:  p.ID,
			HoleCards: p.HoleCards.Clone(),
			Active:    p.IsActive(),
		}
	}
	return seats
}

// Showdown returns the players holding the best hand and ends the hand
func (t *Table) Showdown() ([]*Player, error) {
	ids, err := hands.ResolveWinners(t.Seats(), t.CommunityCards)
	if err != nil {
		return nil, fmt.Errorf("showdown at table %s: %w", t.ID, err)
	}

	winners := make([]*Player, 0, len(ids))
	for _, id := range ids {
		p, err := t.Player(id)
		if err != nil {
			return nil, err
		}
		winners = append(winners, p)
	}

	t.Status = TableStatusEnded
	return winners, nil
}

// Standings ranks every active player at the table
func (t *Table) Standings() ([]hands.Standing, error) {
	return hands.Standings(t.Seats(), t.CommunityCards)
}

// Reset prepares the table for a new hand with a new deck
func (t *Table) Reset() {
	for _, p := range t.Players {
		p.ResetForNewHand()
	}
	t.CommunityCards = nil
	t.RecreateDeck()
	t.Status = TableStatusWaiting
}
