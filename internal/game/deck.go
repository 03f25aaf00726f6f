package game

import (
	"math/rand"

	"github.com/google/uuid"

	"blackjackd/internal/apperrors"
)

// ErrEmptyDeck is returned when a draw is attempted against a deck with no
// cards remaining.
var ErrEmptyDeck = apperrors.New(apperrors.CodeEmptyDeck, "no cards remaining in the deck")

// Deck is an ordered, shuffled sequence of the 52 standard cards. A Deck is
// owned by exactly one Session and is never refilled; callers synchronize
// through the owning session.
type Deck struct {
	cards []Card
}

// NewShuffledDeck builds all 52 rank/suit combinations and shuffles them into
// a uniformly random order. Fairness, not unpredictability, is the goal, so
// the default math/rand source is sufficient.
func NewShuffledDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(rankOrder))
	for _, suit := range Suits {
		for _, name := range rankOrder {
			cards = append(cards, Card{
				ID:    uuid.New(),
				Name:  name,
				Value: rankValues[name],
				Suit:  suit,
			})
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the top card. It fails with ErrEmptyDeck once the
// deck is exhausted.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining reports how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
