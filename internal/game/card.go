// Package game implements the blackjack session core: deck, hand scoring,
// the per-session turn state machine, and the concurrency-safe registry of
// active sessions.
package game

import "github.com/google/uuid"

// Suit identifies one of the four standard card suits.
type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists all suits in canonical order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

const aceName = "Ace"

// rankValues maps every rank label to its base scoring value. The Ace's base
// value is 11; the owning player may reinterpret a dealt Ace as 1.
var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"Jack": 10, "Queen": 10, "King": 10,
	aceName: 11,
}

// rankOrder lists rank labels in canonical order so deck construction is
// deterministic before shuffling.
var rankOrder = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", aceName}

// Card is a single dealt card instance. The ID is unique per physical card
// within a deck, distinct from the rank/suit combination.
type Card struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value int       `json:"value"`
	Suit  Suit      `json:"suit"`
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.Name == aceName
}
