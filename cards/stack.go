package cards

import (
	"fmt"
	"strings"
)

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack holding the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// ParseStack parses a list of card shorthands separated by spaces or commas,
// e.g. "AS KH 5d" or "AS,KH,5d".
func ParseStack(s string) (Stack, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})

	stack := make(Stack, 0, len(fields))
	for i, field := range fields {
		card, err := Parse(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		stack = append(stack, card)
	}

	return stack, nil
}

// MustParseStack is like ParseStack but panics on error. Meant for fixtures.
func MustParseStack(s string) Stack {
	stack, err := ParseStack(s)
	if err != nil {
		panic(err)
	}
	return stack
}

// String returns the cards separated by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Notation returns the cards in fixture notation separated by spaces
func (s Stack) Notation() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.Notation()
	}
	return strings.Join(parts, " ")
}

// Clone returns a copy of the stack that shares no memory with it
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// Concat returns a new stack holding the cards of s followed by others
func (s Stack) Concat(others ...Stack) Stack {
	size := len(s)
	for _, o := range others {
		size += len(o)
	}

	out := make(Stack, 0, size)
	out = append(out, s...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Contains reports whether the stack holds the card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c == card {
			return true
		}
	}
	return false
}

// AddCard adds a card on top of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards adds several cards on top of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the first card of the stack.
// The second value is false when the stack is empty.
func (s *Stack) DealCard() (Card, bool) {
	if len(*s) == 0 {
		return Card{}, false
	}

	card := (*s)[0]
	*s = (*s)[1:]
	return card, true
}

// DealCards removes and returns up to count cards from the front of the stack
func (s *Stack) DealCards(count int) Stack {
	if count > len(*s) {
		count = len(*s)
	}
	if count <= 0 {
		return Stack{}
	}

	dealt := make(Stack, count)
	copy(dealt, (*s)[:count])
	*s = (*s)[count:]
	return dealt
}

// BurnCard discards the first card of the stack
func (s *Stack) BurnCard() {
	s.DealCard()
}
