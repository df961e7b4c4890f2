package domain

import (
	"github.com/google/uuid"
	"github.com/lazharichir/showdown/cards"
)

// Player represents a poker player at a table
type Player struct {
	ID        string
	Name      string
	HoleCards cards.Stack
	Folded    bool
}

// NewPlayer creates a new player with a random ID
func NewPlayer(name string) *Player {
	return &Player{
		ID:        uuid.NewString(),
		Name:      name,
		HoleCards: make(cards.Stack, 0, HoleCardsPerPlayer),
	}
}

// ResetForNewHand clears the player's cards and folded state
func (p *Player) ResetForNewHand() {
	p.HoleCards = make(cards.Stack, 0, HoleCardsPerPlayer)
	p.Folded = false
}

// Fold takes the player out of the current hand
func (p *Player) Fold() {
	p.Folded = true
}

// IsActive reports whether the player still competes for the pot
func (p *Player) IsActive() bool {
	return !p.Folded
}
