package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card shorthand cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of distinct suits
const NumSuits = 4

// Suits lists every suit in enum order
var Suits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the unicode symbol of the suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single letter used in fixture notation
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank represents a card rank, ordered from Two to Ace
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks
const NumRanks = 13

// String returns the rank character used in fixture notation
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string("23456789TJQKA"[r])
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card from a rank and a suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card, e.g. "A♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the two-letter fixture form of the card, e.g. "AS"
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Valid reports whether both rank and suit are known values
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Spades && c.Suit <= Clubs
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c == other
}

// Compare orders cards by rank only: -1 if c is lower, 1 if higher, 0 if the
// ranks match (suits are never compared).
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// Parse creates a card from its shorthand.
// e.g., "AS", "As", "A♠" -> Card{Rank: Ace, Suit: Spades}
// e.g., "TH", "10h", "10♥" -> Card{Rank: Ten, Suit: Hearts}
func Parse(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q is too short", ErrInvalidCard, s)
	}

	var suit Suit
	switch runes[len(runes)-1] {
	case '♠', 's', 'S':
		suit = Spades
	case '♥', 'h', 'H':
		suit = Hearts
	case '♦', 'd', 'D':
		suit = Diamonds
	case '♣', 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToUpper(string(runes[:len(runes)-1])) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is like Parse but panics on error. Meant for fixtures.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
