package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blackjackd_games_created_total",
		Help: "Number of games created.",
	})

	gamesFinishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blackjackd_games_finished_total",
		Help: "Number of games that reached their terminal state.",
	})

	cardsDrawnTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blackjackd_cards_drawn_total",
		Help: "Number of cards dealt across all games.",
	})

	invitationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blackjackd_invitations_total",
		Help: "Invitation lifecycle transitions by resulting status.",
	}, []string{"status"})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blackjackd_rate_limited_total",
		Help: "Requests rejected by the per-player sliding window.",
	})
)
