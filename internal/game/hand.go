package game

import "github.com/google/uuid"

// bustThreshold is the score above which a hand is busted.
const bustThreshold = 21

// Score computes the total for a hand given the per-Ace value choices.
// Non-Ace cards always count their fixed value. Each Ace counts 11 when its
// entry in aceAsEleven is true (the default on draw) and 1 otherwise; every
// Ace is chosen independently, there is no soft/hard renormalization.
//
// Score is pure: identical hand and choices always produce identical output.
func Score(hand []Card, aceAsEleven map[uuid.UUID]bool) (total int, busted bool) {
	for _, card := range hand {
		if !card.IsAce() {
			total += card.Value
			continue
		}
		if eleven, ok := aceAsEleven[card.ID]; !ok || eleven {
			total += 11
		} else {
			total += 1
		}
	}
	return total, total > bustThreshold
}
