// Package api exposes the game core over HTTP: routing, auth middleware,
// request admission, and the mapping from domain errors to status codes.
package api

import (
	"errors"
	"time"

	"blackjackd/internal/auth"
	"blackjackd/internal/game"
	"blackjackd/internal/invite"
	"blackjackd/internal/ratelimit"
	"blackjackd/pkg/bus"
)

const (
	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute
)

// Config controls runtime behaviour for the API handlers.
type Config struct {
	InviteTTL         time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	GlobalRateLimit   int
	AllowedOrigins    []string
}

// Deps are the collaborators the API layer dispatches into.
type Deps struct {
	Games   *game.Registry
	Invites *invite.Manager
	Users   *auth.UserStore
	Tokens  *auth.Tokens
	Limiter *ratelimit.Limiter
	Bus     *bus.Bus // optional; nil disables event publishing
}

// API wires dependencies and configuration for the HTTP handlers.
type API struct {
	games   *game.Registry
	invites *invite.Manager
	users   *auth.UserStore
	tokens  *auth.Tokens
	limiter *ratelimit.Limiter
	bus     *bus.Bus
	config  Config
	started time.Time
}

// New initialises the API layer with sane defaults applied to the provided
// configuration.
func New(deps Deps, cfg Config) (*API, error) {
	if deps.Games == nil {
		return nil, errors.New("game registry is required")
	}
	if deps.Invites == nil {
		return nil, errors.New("invitation manager is required")
	}
	if deps.Users == nil {
		return nil, errors.New("user store is required")
	}
	if deps.Tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	if deps.Limiter == nil {
		return nil, errors.New("rate limiter is required")
	}

	if cfg.RateLimitRequests <= 0 {
		cfg.RateLimitRequests = defaultRateLimitRequests
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = defaultRateLimitWindow
	}

	return &API{
		games:   deps.Games,
		invites: deps.Invites,
		users:   deps.Users,
		tokens:  deps.Tokens,
		limiter: deps.Limiter,
		bus:     deps.Bus,
		config:  cfg,
		started: time.Now(),
	}, nil
}
